// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/painel-produtividade/models"
)

// StructuredConfig is the top-level configuration container for the
// produtividade server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing parameters and the role-reverification toggle.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the embedded relational store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Admin holds the canonical supreme-admin identity enforced at startup.
	Admin Admin `envPrefix:"ADMIN_"`

	// App holds application-level settings: the valid category set and the
	// demo-data seed switch.
	App App `envPrefix:"APP_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token lifecycle and verification settings.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Required.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "720h" for the 30-day default).
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ReverifyRole switches the auth middleware from trusting the role baked
	// into the token to reloading it from storage on every request, trading a
	// DB round-trip for immediate demotion effect.
	// Env: AUTH_REVERIFY_ROLE
	ReverifyRole bool `env:"REVERIFY_ROLE"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded relational store.
type DB struct {
	// DSN is the sqlite database file path (e.g. "./database.db").
	// The file is created on first start when absent.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Admin holds the canonical supreme-admin identity. At startup any stray
// supreme admin with a different email is demoted and this identity is
// created (or promoted) with the configured credentials.
type Admin struct {
	// Name is the display name used if the canonical admin has to be created.
	// Env: ADMIN_NAME
	Name string `env:"NAME"`

	// Email identifies the one account allowed to hold the supreme role.
	// Required. Env: ADMIN_EMAIL
	Email string `env:"EMAIL"`

	// Password is the plaintext password used only when the canonical admin
	// account does not exist yet; it is bcrypt-hashed before storage.
	// Required. Env: ADMIN_PASSWORD
	Password string `env:"PASSWORD"`
}

// App holds application-level domain settings.
type App struct {
	// Categories is the current valid-category set for new demandas.
	// Historic rows are never migrated when the set changes.
	// Env: APP_CATEGORIES (comma-separated)
	Categories []string `env:"CATEGORIES" envSeparator:","`

	// SeedDemoData inserts demo users and demandas on first start.
	// Env: APP_SEED_DEMO_DATA
	SeedDemoData bool `env:"SEED_DEMO_DATA"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionPurgeInterval is how often expired session audit rows are pruned.
	// Env: WORKERS_SESSION_PURGE_INTERVAL
	SessionPurgeInterval time.Duration `env:"SESSION_PURGE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills zero-valued fields so the server boots with only the
// sign key and admin identity configured.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":3000"
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "./database.db"
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "painel-produtividade"
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = 30 * 24 * time.Hour
	}
	if len(cfg.App.Categories) == 0 {
		cfg.App.Categories = models.DefaultCategories()
	}
	if cfg.Workers.SessionPurgeInterval == 0 {
		cfg.Workers.SessionPurgeInterval = time.Hour
	}
}
