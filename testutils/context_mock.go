package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ContextBackgroundMock matches any context argument in mock expectations.
var ContextBackgroundMock = mock.MatchedBy(func(_ context.Context) bool { return true })
