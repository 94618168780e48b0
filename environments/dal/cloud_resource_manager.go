package dal

import (
	"context"

	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

type CloudResourceManager struct{}

func NewCloudResourceManager() *CloudResourceManager {
	return &CloudResourceManager{}
}

// ListProjects issues a single filtered projects.list call. The service is
// rebuilt per call so every query runs with the credentials it was given.
func (d *CloudResourceManager) ListProjects(ctx context.Context, creds option.ClientOption, filter string) ([]*cloudresourcemanager.Project, error) {
	crmv1, err := cloudresourcemanager.NewService(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp, err := crmv1.Projects.List().Filter(filter).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return resp.Projects, nil
}
