package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/api/option"
)

type CredentialsProvider struct {
	mock.Mock
}

func (m *CredentialsProvider) ClientOption(ctx context.Context, serviceAccountPath string) (option.ClientOption, error) {
	args := m.Called(ctx, serviceAccountPath)

	var opt option.ClientOption
	if args.Get(0) != nil {
		opt = args.Get(0).(option.ClientOption)
	}

	return opt, args.Error(1)
}
