package domain

// EnvironmentConfig is the static definition of a single GCP environment.
// Name is the unique registry key; the remaining fields come from the
// environment's configuration entry. Keys the binder does not recognize are
// kept verbatim in Extra so configs may carry attributes this library does
// not interpret.
type EnvironmentConfig struct {
	Name                  string
	Organization          string
	ServiceAccountProject string
	ServiceAccountPath    string
	Extra                 map[string]interface{}
}
