package config

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"

	"github.com/foremast/gcp-environments/environments/domain"
)

// EnvironmentsKey is the environment variable holding the JSON mapping of
// environment name to attributes.
const EnvironmentsKey = "GCP_ENVS"

const (
	keyOrganization          = "organization"
	keyServiceAccountProject = "service_account_project"
	keyServiceAccountPath    = "service_account_path"
)

// FromEnv loads the environment definitions from GCP_ENVS. An unset or empty
// variable yields an empty mapping.
func FromEnv() (map[string]domain.EnvironmentConfig, error) {
	raw, ok := os.LookupEnv(EnvironmentsKey)
	if !ok || raw == "" {
		return map[string]domain.EnvironmentConfig{}, nil
	}

	return Parse([]byte(raw))
}

// Parse binds a JSON object of environment name to attributes. Known keys get
// typed fields; anything else is kept verbatim in Extra. Binding failures are
// reported per environment and aggregated.
func Parse(data []byte) (map[string]domain.EnvironmentConfig, error) {
	var raw map[string]map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid gcp environments config: %w", err)
	}

	var result *multierror.Error

	configs := make(map[string]domain.EnvironmentConfig, len(raw))

	for name, attributes := range raw {
		envConfig, err := bind(name, attributes)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		configs[name] = envConfig
	}

	return configs, result.ErrorOrNil()
}

func bind(name string, attributes map[string]interface{}) (domain.EnvironmentConfig, error) {
	envConfig := domain.EnvironmentConfig{Name: name}

	var result *multierror.Error

	for key, value := range attributes {
		switch key {
		case keyOrganization:
			bindString(name, key, value, &envConfig.Organization, &result)
		case keyServiceAccountProject:
			bindString(name, key, value, &envConfig.ServiceAccountProject, &result)
		case keyServiceAccountPath:
			bindString(name, key, value, &envConfig.ServiceAccountPath, &result)
		default:
			if envConfig.Extra == nil {
				envConfig.Extra = make(map[string]interface{})
			}

			envConfig.Extra[key] = value
		}
	}

	return envConfig, result.ErrorOrNil()
}

func bindString(name, key string, value interface{}, dst *string, result **multierror.Error) {
	s, ok := value.(string)
	if !ok {
		*result = multierror.Append(*result, fmt.Errorf("environment %s: %s must be a string, got %T", name, key, value))
		return
	}

	*dst = s
}
