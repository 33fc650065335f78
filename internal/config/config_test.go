package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "missing region", mutate: func(c *Config) { c.Region = "" }, wantErr: true},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "empty logging fields", mutate: func(c *Config) { c.Logging = Logging{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apigwctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
region: sa-east-1
profile: staging
paramValidation: false
logging:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)
	assert.Equal(t, "staging", cfg.Profile)
	assert.False(t, cfg.ParamValidation)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APIGW_REGION", "eu-west-1")
	t.Setenv("APIGW_LOGGING_LEVEL", "warn")
	t.Chdir(t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apigwctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600))

	_, err := Load(NewViper(), path)
	assert.Error(t, err)

	_, err = Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
