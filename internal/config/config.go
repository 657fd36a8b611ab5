// Package config provides centralized configuration for the storefront suite.
// It loads configuration from an optional YAML file, then environment
// variables, validates the result, and provides sensible defaults.
//
// Environment variables always win over the file so CI can override a checked
// in suite.yaml without editing it.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the public fixture storefront.
	DefaultBaseURL = "https://www.saucedemo.com"

	// DefaultFixturePassword is the credential every fixture account shares.
	// The target's docs quote `secret`; the live fixture accepts
	// `secret_sauce`. Overridable via STOREFRONT_PASSWORD so integration can
	// settle it without a code change.
	DefaultFixturePassword = "secret_sauce"

	// DefaultTaxRate is the business tax rate the overview screen applies to
	// the item subtotal.
	DefaultTaxRate = 0.0625

	defaultTimeout     = 5 * time.Second
	defaultSlowTimeout = 30 * time.Second
)

// Config holds all suite configuration.
type Config struct {
	// Target
	BaseURL string

	// Browser
	Headless       bool
	DefaultTimeout time.Duration
	// SlowLoginTimeout bounds the one documented slow path: the
	// performance-glitch account's login, which renders the inventory well
	// after the default window.
	SlowLoginTimeout time.Duration

	// Artifacts
	ArtifactDir string

	// Selective execution: scenarios tagged with none of these are skipped.
	// Empty means run everything.
	Tags []string

	// Seed drives every randomized factory so a run is reproducible.
	// Zero means derive from the clock.
	Seed int64

	// TaxRate is used to recompute expected totals from catalog prices.
	TaxRate float64

	// FixturePassword is shared by all named fixture accounts.
	FixturePassword string
}

// fileConfig mirrors Config for YAML decoding; durations are milliseconds.
type fileConfig struct {
	BaseURL            string   `yaml:"base_url"`
	Headed             bool     `yaml:"headed"`
	TimeoutMS          int      `yaml:"timeout_ms"`
	SlowLoginTimeoutMS int      `yaml:"slow_login_timeout_ms"`
	ArtifactDir        string   `yaml:"artifact_dir"`
	Tags               []string `yaml:"tags"`
	Seed               int64    `yaml:"seed"`
	TaxRate            float64  `yaml:"tax_rate"`
	FixturePassword    string   `yaml:"fixture_password"`
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Load builds the suite configuration. Order of precedence, lowest first:
// defaults, YAML file named by STOREFRONT_CONFIG (if set), STOREFRONT_* env vars.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:          DefaultBaseURL,
		Headless:         true,
		DefaultTimeout:   defaultTimeout,
		SlowLoginTimeout: defaultSlowTimeout,
		ArtifactDir:      "",
		TaxRate:          DefaultTaxRate,
		FixturePassword:  DefaultFixturePassword,
	}

	if path := os.Getenv("STOREFRONT_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Headed {
		c.Headless = false
	}
	if fc.TimeoutMS > 0 {
		c.DefaultTimeout = time.Duration(fc.TimeoutMS) * time.Millisecond
	}
	if fc.SlowLoginTimeoutMS > 0 {
		c.SlowLoginTimeout = time.Duration(fc.SlowLoginTimeoutMS) * time.Millisecond
	}
	if fc.ArtifactDir != "" {
		c.ArtifactDir = fc.ArtifactDir
	}
	if len(fc.Tags) > 0 {
		c.Tags = normalizeTags(fc.Tags)
	}
	if fc.Seed != 0 {
		c.Seed = fc.Seed
	}
	if fc.TaxRate != 0 {
		c.TaxRate = fc.TaxRate
	}
	if fc.FixturePassword != "" {
		c.FixturePassword = fc.FixturePassword
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv("STOREFRONT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("STOREFRONT_HEADED"); v != "" {
		headed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_HEADED: %w", err)
		}
		c.Headless = !headed
	}
	if v := os.Getenv("STOREFRONT_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_TIMEOUT_MS: %w", err)
		}
		c.DefaultTimeout = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("STOREFRONT_SLOW_LOGIN_TIMEOUT_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_SLOW_LOGIN_TIMEOUT_MS: %w", err)
		}
		c.SlowLoginTimeout = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("STOREFRONT_ARTIFACT_DIR"); v != "" {
		c.ArtifactDir = v
	}
	if v := os.Getenv("STOREFRONT_TAGS"); v != "" {
		c.Tags = normalizeTags(strings.Split(v, ","))
	}
	if v := os.Getenv("STOREFRONT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("STOREFRONT_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("STOREFRONT_TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("STOREFRONT_TAX_RATE: %w", err)
		}
		c.TaxRate = rate
	}
	if v := os.Getenv("STOREFRONT_PASSWORD"); v != "" {
		c.FixturePassword = v
	}
	return nil
}

func (c *Config) validate() error {
	var issues []string

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, fmt.Sprintf("base URL %q is not an absolute URL", c.BaseURL))
	}
	if c.DefaultTimeout <= 0 {
		issues = append(issues, "default timeout must be positive")
	}
	if c.SlowLoginTimeout < c.DefaultTimeout {
		issues = append(issues, "slow login timeout must be at least the default timeout")
	}
	if c.TaxRate <= 0 || c.TaxRate >= 1 {
		issues = append(issues, fmt.Sprintf("tax rate %v must be between 0 and 1 exclusive", c.TaxRate))
	}
	if c.FixturePassword == "" {
		issues = append(issues, "fixture password must not be empty")
	}

	if len(issues) > 0 {
		return &ValidationError{Errors: issues}
	}
	return nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// TagEnabled reports whether a scenario carrying the given tags should run
// under this configuration. An empty filter enables everything.
func (c *Config) TagEnabled(tags ...string) bool {
	if len(c.Tags) == 0 {
		return true
	}
	for _, want := range c.Tags {
		for _, have := range tags {
			if strings.EqualFold(strings.TrimSpace(have), want) {
				return true
			}
		}
	}
	return false
}
