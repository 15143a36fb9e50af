package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_FullConfig verifies that all env variables map onto the
// expected struct fields, prefixes included.
func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("APP_LOG_ERRORS", "true")
	t.Setenv("APP_DEV_MODE", "true")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "noteboard-test")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/noteboard")
	t.Setenv("SERVER_ADDRESS", "localhost:5000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("CONFIG", "/tmp/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.True(t, cfg.App.LogErrors)
	assert.True(t, cfg.App.DevMode)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "noteboard-test", cfg.Auth.TokenIssuer)
	assert.Equal(t, "postgres://localhost/noteboard", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

// TestParseEnv_Empty verifies that missing env variables leave zero values.
func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// TestParseEnv_InvalidDuration verifies that an unparsable duration value
// produces a wrapped error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
