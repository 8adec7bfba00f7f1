// Package config loads CLI settings from defaults, an optional YAML file and
// POKEDEX_* environment variables. Flags are applied on top by the caller.
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokedex-cli/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-cli/internal/clients/transport"
	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokedex-cli/internal/pkg/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. POKEDEX_BASE_URL
const EnvPrefix = "POKEDEX"

// MaxTimeout bounds the per-request timeout
const MaxTimeout = time.Minute

// MaxCount bounds FallbackCount and CatalogLimit
const MaxCount = 100000

// Config holds every user-tunable setting
type Config struct {
	BaseURL   string        `yaml:"base_url" envconfig:"BASE_URL"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	UserAgent string        `yaml:"user_agent" envconfig:"USER_AGENT"`

	Strategy      string `yaml:"strategy" envconfig:"STRATEGY"`
	FallbackCount int    `yaml:"fallback_count" envconfig:"FALLBACK_COUNT"`
	CatalogLimit  int    `yaml:"catalog_limit" envconfig:"CATALOG_LIMIT"`

	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`

	JSON    bool `yaml:"json" envconfig:"JSON"`
	NoColor bool `yaml:"no_color" envconfig:"NO_COLOR"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		BaseURL:       pokeapi.DefaultBaseURL,
		Timeout:       transport.DefaultHTTPTimeout,
		UserAgent:     transport.DefaultUserAgent,
		Strategy:      string(lookup.StrategyIndex),
		FallbackCount: lookup.DefaultFallbackCount,
		CatalogLimit:  lookup.DefaultCatalogLimit,
		LogLevel:      "warn",
		LogFormat:     logging.FormatText,
	}
}

// Load layers the YAML file at path (skipped when empty) and the environment
// over the defaults. The result is not validated; call Validate after flags
// have been applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read environment")
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("config file %s does not exist", path)
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config file %s", path)
	}
	return nil
}

// Validate checks the merged settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateAbsoluteURL("BaseURL", c.BaseURL, vb)
	if c.Timeout <= 0 || c.Timeout > MaxTimeout {
		vb.Fieldf("Timeout", "must be in (0, %s], got %s", MaxTimeout, c.Timeout)
	}
	errors.ValidateRequired("UserAgent", c.UserAgent, vb)
	errors.ValidateEnum("Strategy", c.Strategy, lookup.Strategies(), vb)
	errors.ValidateRange("FallbackCount", c.FallbackCount, 1, MaxCount, vb)
	errors.ValidateRange("CatalogLimit", c.CatalogLimit, 1, MaxCount, vb)
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", errors.GetMessage(err))
	}
	errors.ValidateEnum("LogFormat", c.LogFormat, []string{logging.FormatText, logging.FormatJSON}, vb)

	return vb.Build()
}
