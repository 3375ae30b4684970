package account

import (
	"time"

	"github.com/kbukum/accountkit/config"
	"github.com/kbukum/accountkit/httpclient"
	"github.com/kbukum/accountkit/logger"
	"github.com/kbukum/accountkit/validation"
)

// DefaultBaseURL is the production account API endpoint.
const DefaultBaseURL = "https://account.cloud.online.net/"

// Config configures the account client.
type Config struct {
	// BaseURL is the root URL of the account API.
	// Defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Token is the auth token identifying the caller. A client without a
	// token performs no permission lookups and reports no permissions.
	Token string `yaml:"token" mapstructure:"token"`

	// Timeout is the per-request timeout. Defaults to the httpclient default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures TLS settings for the underlying transport.
	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Logging configures the client's structured logging.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return c.Logging.Validate()
}

// LoadConfig loads the client configuration from config files and the
// environment under the "account" key (see the config package), applies
// defaults, and validates the result.
func LoadConfig(opts ...config.LoaderOption) (Config, error) {
	var wrapper struct {
		Account Config `yaml:"account" mapstructure:"account"`
	}
	if err := config.Load("account", &wrapper, opts...); err != nil {
		return Config{}, err
	}

	cfg := wrapper.Account
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
