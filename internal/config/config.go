// Package config loads planner configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the planner service.
// Environment variables are parsed from the PLANNER_ prefix.
type Config struct {
	// HTTP Configuration
	Addr string `envconfig:"ADDR" default:":8080"`

	// Storage Configuration
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// Fetch Configuration. Mirrors are tried in order before the direct
	// URL; a "{url}" placeholder is replaced with the escaped target.
	Mirrors      []string `envconfig:"MIRRORS" default:""`
	FetchTimeout int      `envconfig:"FETCH_TIMEOUT_SECONDS" default:"20"`

	// Live timeline refresh interval.
	LiveRefresh int `envconfig:"LIVE_REFRESH_SECONDS" default:"30"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PLANNER", &cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %d", cfg.FetchTimeout)
	}
	if cfg.LiveRefresh <= 0 {
		return nil, fmt.Errorf("live refresh interval must be positive, got %d", cfg.LiveRefresh)
	}
	return &cfg, nil
}

// FetchTimeoutDuration returns the fetch timeout as a duration.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// LiveRefreshDuration returns the live refresh interval as a duration.
func (c *Config) LiveRefreshDuration() time.Duration {
	return time.Duration(c.LiveRefresh) * time.Second
}
