package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestParseJSON_FullConfig verifies that every section of the JSON file is
// mapped onto the structured config.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"log_errors": true, "dev_mode": true},
		"auth": {"token_sign_key": "json-secret", "token_issuer": "noteboard-json"},
		"storage": {"db": {"dsn": "postgres://localhost/noteboard"}},
		"server": {"http_address": "localhost:5001", "request_timeout": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.LogErrors)
	assert.True(t, cfg.App.DevMode)
	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "noteboard-json", cfg.Auth.TokenIssuer)
	assert.Equal(t, "postgres://localhost/noteboard", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:5001", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// TestParseJSON_MissingFile verifies a wrapped error for a nonexistent path.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestParseJSON_MalformedJSON verifies a wrapped error for bad content.
func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, "{not valid json")

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// TestDuration_UnmarshalJSON covers the accepted duration representations.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"30s"`, expected: 30 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "bad string", input: `"not-a-duration"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
