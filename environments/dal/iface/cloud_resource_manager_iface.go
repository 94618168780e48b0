package iface

import (
	"context"

	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

type CloudResourceManager interface {
	ListProjects(ctx context.Context, creds option.ClientOption, filter string) ([]*cloudresourcemanager.Project, error)
}
