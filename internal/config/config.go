// Package config handles loading and validating the adapter configuration
// from an optional YAML file and SHOPSITE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable the adapter reads.
const EnvPrefix = "SHOPSITE"

// ErrMissingCredential is returned when a required ShopSite credential is
// not configured. The adapter must not start without it.
var ErrMissingCredential = errors.New("missing required credential")

// Config is the top-level application configuration.
type Config struct {
	ShopSite  ShopSiteConfig  `yaml:"shopsite"`
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ShopSiteConfig holds the store address and application credentials.
// Username and Password are the optional back-office login.
type ShopSiteConfig struct {
	BaseURL      string        `yaml:"base_url"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	AuthCode     string        `yaml:"auth_code"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	Timeout      time.Duration `yaml:"timeout"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// RateLimitConfig defines the local limits on signed ShopSite calls.
type RateLimitConfig struct {
	Enabled    bool    `yaml:"enabled"`
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load builds the configuration. If path is non-empty the YAML file is read
// with environment variable substitution; SHOPSITE_* variables then override
// the file. Defaults are applied before validation.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays SHOPSITE_BASE_URL, SHOPSITE_CLIENT_ID,
// SHOPSITE_CLIENT_SECRET, SHOPSITE_AUTH_CODE, SHOPSITE_USER and
// SHOPSITE_PASS onto cfg. Unset or empty variables leave cfg alone.
func applyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	overrideString(v, "base_url", &cfg.ShopSite.BaseURL)
	overrideString(v, "client_id", &cfg.ShopSite.ClientID)
	overrideString(v, "client_secret", &cfg.ShopSite.ClientSecret)
	overrideString(v, "auth_code", &cfg.ShopSite.AuthCode)
	overrideString(v, "user", &cfg.ShopSite.Username)
	overrideString(v, "pass", &cfg.ShopSite.Password)
}

func overrideString(v *viper.Viper, key string, dst *string) {
	if s := v.GetString(key); s != "" {
		*dst = s
	}
}

func applyDefaults(cfg *Config) {
	applyShopSiteDefaults(&cfg.ShopSite)
	applyServerDefaults(&cfg.Server)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyLoggingDefaults(&cfg.Logging)
}

func applyShopSiteDefaults(s *ShopSiteConfig) {
	if s.Timeout == 0 {
		s.Timeout = 30 * time.Second
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 2 * time.Minute
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	required := []struct {
		key   string
		env   string
		value string
	}{
		{"shopsite.base_url", "SHOPSITE_BASE_URL", cfg.ShopSite.BaseURL},
		{"shopsite.client_id", "SHOPSITE_CLIENT_ID", cfg.ShopSite.ClientID},
		{"shopsite.client_secret", "SHOPSITE_CLIENT_SECRET", cfg.ShopSite.ClientSecret},
		{"shopsite.auth_code", "SHOPSITE_AUTH_CODE", cfg.ShopSite.AuthCode},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s (or %s)", ErrMissingCredential, r.key, r.env))
		}
	}

	if cfg.ShopSite.BaseURL != "" {
		u, err := url.Parse(cfg.ShopSite.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf(
				"shopsite.base_url must be an absolute http(s) URL (got %q)",
				cfg.ShopSite.BaseURL,
			))
		}
	}

	if (cfg.ShopSite.Username == "") != (cfg.ShopSite.Password == "") {
		errs = append(errs, fmt.Errorf("shopsite.username and shopsite.password must be set together"))
	}

	if cfg.RateLimit.PerSecond < 0 || cfg.RateLimit.Burst < 0 || cfg.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit values must not be negative"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
