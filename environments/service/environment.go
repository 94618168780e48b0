package service

import (
	"context"
	"fmt"

	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"

	"github.com/foremast/gcp-environments/environments/dal/iface"
	"github.com/foremast/gcp-environments/environments/domain"
	"github.com/foremast/gcp-environments/logger"
)

// Environment is one named GCP environment: a group of projects sharing a
// cloud_env label, looked up with the environment's own service account.
// Project lookups are cached per instance so repeated calls do not hit the
// resource manager API again.
type Environment struct {
	loggerProvider logger.Provider
	config         domain.EnvironmentConfig
	crm            iface.CloudResourceManager
	credentials    iface.CredentialsProvider

	allProjectsCache   []*cloudresourcemanager.Project
	singleProjectCache map[string]*cloudresourcemanager.Project
}

func NewEnvironment(
	log logger.Provider,
	config domain.EnvironmentConfig,
	crm iface.CloudResourceManager,
	credentials iface.CredentialsProvider,
) *Environment {
	return &Environment{
		loggerProvider:     log,
		config:             config,
		crm:                crm,
		credentials:        credentials,
		singleProjectCache: make(map[string]*cloudresourcemanager.Project),
	}
}

func (e *Environment) Name() string {
	return e.config.Name
}

func (e *Environment) Organization() string {
	return e.config.Organization
}

func (e *Environment) Config() domain.EnvironmentConfig {
	return e.config
}

// GetCredentials builds service account credentials from the environment's
// key file. Credentials are re-derived on every call, never cached.
func (e *Environment) GetCredentials(ctx context.Context) (option.ClientOption, error) {
	return e.credentials.ClientOption(ctx, e.config.ServiceAccountPath)
}

// ListProjects returns all projects in this environment. The first call
// queries the resource manager; the result is cached for the lifetime of the
// instance. An environment with zero projects is a configuration error and
// the cache is left empty, so a later call queries again.
func (e *Environment) ListProjects(ctx context.Context) ([]*cloudresourcemanager.Project, error) {
	l := e.loggerProvider(ctx)

	if len(e.allProjectsCache) > 0 {
		l.Debugf("reusing gcp projects cache for environment %s", e.config.Name)
		return e.allProjectsCache, nil
	}

	creds, err := e.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}

	filter := e.projectFilter()

	projects, err := e.crm.ListProjects(ctx, creds, filter)
	if err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		return nil, &domain.EnvironmentConfigurationError{
			Filter:  filter,
			Message: "a gcp environment needs at least one project",
		}
	}

	e.allProjectsCache = projects

	return projects, nil
}

// ResolveProject returns the single project whose name starts with the given
// prefix. Results are cached per exact prefix. Zero matches is a configuration
// error; more than one match means the prefix cannot identify a project and
// the caller has to disambiguate with labels or a longer prefix.
func (e *Environment) ResolveProject(ctx context.Context, prefix string) (*cloudresourcemanager.Project, error) {
	l := e.loggerProvider(ctx)

	if project, ok := e.singleProjectCache[prefix]; ok {
		l.Debugf("reusing gcp project cache for environment %s and project %s", e.config.Name, prefix)
		return project, nil
	}

	creds, err := e.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}

	filter := e.projectPrefixFilter(prefix)

	projects, err := e.crm.ListProjects(ctx, creds, filter)
	if err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		return nil, &domain.EnvironmentConfigurationError{Filter: filter}
	}

	if len(projects) > 1 {
		names := make([]string, 0, len(projects))
		for _, project := range projects {
			names = append(names, project.Name)
		}

		return nil, &domain.AmbiguousProjectError{Filter: filter, Names: names}
	}

	e.singleProjectCache[prefix] = projects[0]

	return projects[0], nil
}

// projectFilter restricts queries to projects labeled with this environment.
func (e *Environment) projectFilter() string {
	return fmt.Sprintf("labels.cloud_env:%s", e.config.Name)
}

func (e *Environment) projectPrefixFilter(prefix string) string {
	return fmt.Sprintf("%s name:%s*", e.projectFilter(), prefix)
}
