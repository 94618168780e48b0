package service

import (
	"github.com/foremast/gcp-environments/environments/dal"
	"github.com/foremast/gcp-environments/environments/dal/iface"
	"github.com/foremast/gcp-environments/environments/domain"
	"github.com/foremast/gcp-environments/logger"
)

// Registry builds Environment instances from static configuration. All
// environments built by one registry share its resource manager client and
// credential provider.
type Registry struct {
	loggerProvider logger.Provider
	crm            iface.CloudResourceManager
	credentials    iface.CredentialsProvider
}

func NewRegistry(log logger.Provider) *Registry {
	return &Registry{
		loggerProvider: log,
		crm:            dal.NewCloudResourceManager(),
		credentials:    dal.NewServiceAccountFile(),
	}
}

func NewRegistryWithClients(log logger.Provider, crm iface.CloudResourceManager, credentials iface.CredentialsProvider) *Registry {
	return &Registry{
		loggerProvider: log,
		crm:            crm,
		credentials:    credentials,
	}
}

// BuildFromConfig constructs one Environment per configuration entry. The map
// key wins as the environment name. Construction is purely local: no
// credentials are read and no queries are issued until an environment is used.
func (r *Registry) BuildFromConfig(cfg map[string]domain.EnvironmentConfig) map[string]*Environment {
	environments := make(map[string]*Environment, len(cfg))

	for name, envConfig := range cfg {
		envConfig.Name = name
		environments[name] = NewEnvironment(r.loggerProvider, envConfig, r.crm, r.credentials)
	}

	return environments
}
