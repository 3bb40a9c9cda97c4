// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	applog "bithacks/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bithacks.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}

func TestLoadConfig_UnmarshalError(t *testing.T) {
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeTempConfig(t, `
log_level: warn
output:
  format: bin
  width: 8
server:
  address: 0.0.0.0:7000
permutations:
  limit: 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatBin, cfg.Output.Format)
	assert.Equal(t, 8, cfg.Output.Width)
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.Address)
	assert.Equal(t, 10, cfg.Permutations.Limit)
	// Keys missing from the file keep their defaults.
	assert.Equal(t, DefaultMaxClients, cfg.Server.MaxClients)
	assert.Equal(t, int64(DefaultReadLimit), cfg.Server.ReadLimit)
	assert.Equal(t, applog.LevelWarn, cfg.Level())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Format", "output:\n  format: octal\n", "output.format"},
		{"Width", "output:\n  width: 12\n", "output.width"},
		{"LogLevel", "log_level: loud\n", "log_level"},
		{"Address", "server:\n  address: \"\"\n", "server.address"},
		{"MaxClients", "server:\n  max_clients: 0\n", "server.max_clients"},
		{"ReadLimit", "server:\n  read_limit: -1\n", "server.read_limit"},
		{"Limit", "permutations:\n  limit: 0\n", "permutations.limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeTempConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_DEBUG", "true")
	t.Setenv("ENV_LOG_LEVEL", "ERROR")
	t.Setenv("ENV_OUTPUT_FORMAT", "DEC")
	t.Setenv("ENV_SERVER_ADDRESS", "localhost:1234")

	cfg, err := LoadConfig(writeTempConfig(t, "output:\n  format: bin\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, FormatDec, cfg.Output.Format)
	assert.Equal(t, "localhost:1234", cfg.Server.Address)
	// Debug wins over the configured level.
	assert.Equal(t, applog.LevelDebug, cfg.Level())
}

func TestLoadConfig_EnvIgnoresBadBool(t *testing.T) {
	t.Setenv("ENV_DEBUG", "sometimes")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatDec, FormatHex, FormatBin} {
		assert.NoError(t, ValidateFormat(f))
	}
	assert.NoError(t, ValidateFormat("HEX"))
	assert.NoError(t, ValidateFormat("Bin"))
	assert.ErrorIs(t, ValidateFormat("octal"), ErrInvalid)
	assert.ErrorIs(t, ValidateFormat(""), ErrInvalid)
}
