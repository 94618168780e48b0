package dal

import (
	"context"
	"os"

	"golang.org/x/oauth2/google"
	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/option"

	"github.com/foremast/gcp-environments/environments/domain"
)

// ServiceAccountFile builds client options from a service account key file,
// always scoped to full cloud-platform access.
type ServiceAccountFile struct{}

func NewServiceAccountFile() *ServiceAccountFile {
	return &ServiceAccountFile{}
}

func (s *ServiceAccountFile) ClientOption(ctx context.Context, serviceAccountPath string) (option.ClientOption, error) {
	data, err := os.ReadFile(serviceAccountPath)
	if err != nil {
		return nil, &domain.AuthenticationError{Path: serviceAccountPath, Err: err}
	}

	conf, err := google.JWTConfigFromJSON(data, compute.CloudPlatformScope)
	if err != nil {
		return nil, &domain.AuthenticationError{Path: serviceAccountPath, Err: err}
	}

	return option.WithTokenSource(conf.TokenSource(ctx)), nil
}
