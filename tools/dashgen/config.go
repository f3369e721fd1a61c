package main

import "errors"

// KnownMetrics is the set of metric names exported by shopsite-adapter
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"shopsite_http_request_duration_seconds": true,
	"shopsite_http_requests_total":           true,

	// Health metrics.
	"shopsite_healthz_up": true,

	// ShopSite API metrics.
	"shopsite_api_requests_total":           true,
	"shopsite_api_request_duration_seconds": true,
	"shopsite_auth_attempts_total":          true,
	"shopsite_inventory_updates_total":      true,
	"shopsite_api_daily_usage":              true,
	"shopsite_api_daily_limit_hits_total":   true,

	// Recording rules.
	"shopsite:http_requests:rate5m":      true,
	"shopsite:http_errors:rate5m":        true,
	"shopsite:api_requests:rate5m":       true,
	"shopsite:api_errors:rate5m":         true,
	"shopsite:inventory_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
