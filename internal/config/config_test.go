package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanTurko/mws-sdk-go/mws"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults applied",
			yaml: `
credentials:
  access_key_id: AK1
  secret_key: secret
  seller_id: SELLER1
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, mws.DefaultHost, cfg.Host)
				assert.Equal(t, 30*time.Second, cfg.Timeout)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, mws.Credentials{AccessKeyID: "AK1", SecretKey: "secret", SellerID: "SELLER1"}, cfg.Credentials.MWS())
			},
		},
		{
			name: "env var substitution",
			yaml: `
credentials:
  access_key_id: ${TEST_MWS_KEY}
  secret_key: ${TEST_MWS_SECRET}
  seller_id: SELLER1
  auth_token: ${TEST_MWS_TOKEN}
host: mws-eu.amazonservices.com
timeout: 5s
marketplace_ids: [A1F83G8C2ARO7P]
logging:
  level: debug
  format: json
`,
			envVars: map[string]string{
				"TEST_MWS_KEY":    "AK2",
				"TEST_MWS_SECRET": "s3cr3t",
				"TEST_MWS_TOKEN":  "amzn.mws.x",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "AK2", cfg.Credentials.AccessKeyID)
				assert.Equal(t, "s3cr3t", cfg.Credentials.SecretKey)
				assert.Equal(t, "amzn.mws.x", cfg.Credentials.AuthToken)
				assert.Equal(t, "mws-eu.amazonservices.com", cfg.Host)
				assert.Equal(t, 5*time.Second, cfg.Timeout)
				assert.Equal(t, []string{"A1F83G8C2ARO7P"}, cfg.MarketplaceIDs)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "all problems reported",
			yaml: `
logging:
  format: xml
`,
			wantErr: "credentials.access_key_id is required",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_ReportsEveryError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\ntimeout: -1s\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	for _, want := range []string{
		"credentials.access_key_id is required",
		"credentials.secret_key is required",
		"credentials.seller_id is required",
		"timeout must not be negative",
		`logging.format must be one of: text, json (got "xml")`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestRead_DefersValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: mws-eu.amazonservices.com\n"), 0o600))

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "mws-eu.amazonservices.com", cfg.Host)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.ErrorContains(t, cfg.Validate(), "credentials.access_key_id is required")

	_, err = Load(path)
	assert.ErrorContains(t, err, "validating config")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, mws.DefaultHost, cfg.Host)
	assert.Error(t, cfg.Validate())
}
