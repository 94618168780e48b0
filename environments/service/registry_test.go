package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremast/gcp-environments/environments/dal/mocks"
	"github.com/foremast/gcp-environments/environments/domain"
	"github.com/foremast/gcp-environments/logger"
)

func TestRegistry_BuildFromConfig(t *testing.T) {
	r := NewRegistryWithClients(logger.FromContext, &mocks.CloudResourceManager{}, &mocks.CredentialsProvider{})

	cfg := map[string]domain.EnvironmentConfig{
		"dev": {
			Organization:       "example.org",
			ServiceAccountPath: "/secrets/dev.json",
		},
		"prod": {
			ServiceAccountPath: "/secrets/prod.json",
			Extra:              map[string]interface{}{"region": "us-east1"},
		},
	}

	environments := r.BuildFromConfig(cfg)
	require.Len(t, environments, 2)

	dev, ok := environments["dev"]
	require.True(t, ok)
	assert.Equal(t, "dev", dev.Name())
	assert.Equal(t, "example.org", dev.Organization())
	assert.Equal(t, "/secrets/dev.json", dev.Config().ServiceAccountPath)

	prod, ok := environments["prod"]
	require.True(t, ok)
	assert.Equal(t, "prod", prod.Name())
	assert.Equal(t, map[string]interface{}{"region": "us-east1"}, prod.Config().Extra)
}

func TestRegistry_BuildFromConfigEmpty(t *testing.T) {
	r := NewRegistry(logger.FromContext)

	environments := r.BuildFromConfig(map[string]domain.EnvironmentConfig{})
	assert.Empty(t, environments)
}

func TestRegistry_BuildFromConfigKeyWinsOverName(t *testing.T) {
	r := NewRegistry(logger.FromContext)

	environments := r.BuildFromConfig(map[string]domain.EnvironmentConfig{
		"stage": {Name: "something-else"},
	})

	require.Contains(t, environments, "stage")
	assert.Equal(t, "stage", environments["stage"].Name())
}
