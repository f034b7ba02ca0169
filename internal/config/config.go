// Package config loads the mwsctl YAML configuration file, with environment
// variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/IvanTurko/mws-sdk-go/mws"
)

// Config is the mwsctl configuration.
type Config struct {
	Credentials CredentialsConfig `yaml:"credentials"`
	Host        string            `yaml:"host"`
	Timeout     time.Duration     `yaml:"timeout"`
	// MarketplaceIDs are used by commands that need a marketplace and were
	// not given one on the command line.
	MarketplaceIDs []string      `yaml:"marketplace_ids"`
	Logging        LoggingConfig `yaml:"logging"`
}

// CredentialsConfig holds the seller account keys. Values are usually
// ${MWS_...} references.
type CredentialsConfig struct {
	AccessKeyID string `yaml:"access_key_id"`
	SecretKey   string `yaml:"secret_key"`
	SellerID    string `yaml:"seller_id"`
	AuthToken   string `yaml:"auth_token"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// MWS converts the credentials section.
func (c CredentialsConfig) MWS() mws.Credentials {
	return mws.Credentials{
		AccessKeyID: c.AccessKeyID,
		SecretKey:   c.SecretKey,
		SellerID:    c.SellerID,
		AuthToken:   c.AuthToken,
	}
}

// Default returns a configuration with every default applied and no
// credentials.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads path with Read and validates the result.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Read reads path, expands environment variables and applies defaults
// without validating, so callers can layer overrides first.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Host == "" {
		cfg.Host = mws.DefaultHost
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = mws.DefaultTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate reports every problem at once.
func (cfg *Config) Validate() error {
	var errs []error

	if cfg.Credentials.AccessKeyID == "" {
		errs = append(errs, errors.New("credentials.access_key_id is required"))
	}
	if cfg.Credentials.SecretKey == "" {
		errs = append(errs, errors.New("credentials.secret_key is required"))
	}
	if cfg.Credentials.SellerID == "" {
		errs = append(errs, errors.New("credentials.seller_id is required"))
	}
	if cfg.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative (got %s)", cfg.Timeout))
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
