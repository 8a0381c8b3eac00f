package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineflix/dbservice/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "dbservice", cfg.Service.Name)
	assert.Equal(t, 9090, cfg.Service.GRPCPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "cineflix", cfg.NATS.SubjectPrefix)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CINEFLIX_DATABASE_HOST", "db.internal")
	t.Setenv("CINEFLIX_SERVICE_ENVIRONMENT", "production")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := config.Load("/nonexistent/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "dbservice", cfg.Service.Name)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.Service.GRPCPort = 0
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	assert.NoError(t, cfg.Validate())
}
