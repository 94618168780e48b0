package iface

import (
	"context"

	"google.golang.org/api/option"
)

type CredentialsProvider interface {
	ClientOption(ctx context.Context, serviceAccountPath string) (option.ClientOption, error)
}
