package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

type CloudResourceManager struct {
	mock.Mock
}

func (m *CloudResourceManager) ListProjects(ctx context.Context, creds option.ClientOption, filter string) ([]*cloudresourcemanager.Project, error) {
	args := m.Called(ctx, creds, filter)

	var projects []*cloudresourcemanager.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]*cloudresourcemanager.Project)
	}

	return projects, args.Error(1)
}
