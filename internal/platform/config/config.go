// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (site renderer, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the CodeNinjaHub site.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// SiteBaseURL is the absolute origin used for canonical links, the sitemap
	// and structured data. A trailing slash is trimmed on load.
	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:3000"`

	// Key-Value Cache (Redis). Empty means rendered pages are kept in memory.
	RedisURL string `env:"REDIS_URL"`

	// PageCacheTTL is how long a rendered page lives in the cache.
	PageCacheTTL time.Duration `env:"PAGE_CACHE_TTL" envDefault:"1h"`

	// ExportDir is the default output directory of the static export.
	ExportDir string `env:"EXPORT_DIR" envDefault:"./public"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.SiteBaseURL = strings.TrimRight(cfg.SiteBaseURL, "/")
	if cfg.SiteBaseURL == "" {
		return nil, fmt.Errorf("config: SITE_BASE_URL must not be empty")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Origins returns the allowed CORS origins: the site itself first, then
// any EXTRA_ORIGINS entries.
func (c *Config) Origins() []string {
	origins := []string{c.SiteBaseURL}
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
