// ABOUTME: Configuration management with defaults, an optional YAML file and environment overrides
// ABOUTME: Defines file locations, cache backend, fetch behaviour and logging settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// DefaultBannedHosts are hosts the fetch step never scrapes
var DefaultBannedHosts = []string{
	"vitalik.ca",
	"archive.ph",
	"archive.is",
	"historic-cities.huji.ac.il",
	"society.robinsloan.com",
	"esoteric.codes",
	"l.bulletin.com",
	"probmods.org",
	"example.com",
	"xn--url-u63b6dn8esao8c4jh9d2c1a0lk29262bmhrb.com",
}

// Config holds all application configuration
type Config struct {
	// File is the YAML file the config was read from, if any
	File string `yaml:"-"`

	// Paths locates the inputs and the canonical link file
	Paths PathsConfig `yaml:"paths"`

	// Cache contains content cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Fetch controls article scraping
	Fetch FetchConfig `yaml:"fetch"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`
}

// PathsConfig holds file and directory locations
type PathsConfig struct {
	// Links is the canonical link file
	Links string `yaml:"links" default:"links.json"`

	// GoodLinks is the read-later JSON export
	GoodLinks string `yaml:"goodlinks" default:"goodlinks.json"`

	// Vault is the root directory of the note vault
	Vault string `yaml:"vault" default:"notes"`
}

// CacheConfig holds content cache configuration
type CacheConfig struct {
	// Type specifies the cache backend (sqlite/memory)
	Type string `yaml:"type" default:"sqlite"`

	// Path is the SQLite file, or :memory:
	Path string `yaml:"path" default:"cache.db"`

	// Table is the SQLite content table name
	Table string `yaml:"table" default:"cache"`
}

// FetchConfig holds scraping configuration
type FetchConfig struct {
	// Timeout bounds each page download
	Timeout time.Duration `yaml:"timeout" default:"30s"`

	// RatePerSecond caps scrapes per second; 0 disables pacing
	RatePerSecond float64 `yaml:"rate_per_second"`

	// BannedHosts replaces DefaultBannedHosts when set
	BannedHosts []string `yaml:"banned_hosts"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level" default:"info"`

	// Format is text or json
	Format string `yaml:"format" default:"text"`

	// File sends logs to a rotated file instead of stderr
	File string `yaml:"file"`
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads defaults, then the YAML file at path (when not empty), then
// environment overrides
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		// Refill fields the file left empty
		if err := cfg.setDefaults(); err != nil {
			return nil, err
		}
		cfg.File = path
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFromEnv loads the built-in configuration with environment overrides
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func (c *Config) setDefaults() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if len(c.Fetch.BannedHosts) == 0 {
		c.Fetch.BannedHosts = append([]string(nil), DefaultBannedHosts...)
	}
	return nil
}

// ApplyEnv overrides settings from SYNC_* environment variables
func (c *Config) ApplyEnv() {
	c.Paths.Links = getEnvOrDefault("SYNC_LINKS_FILE", c.Paths.Links)
	c.Paths.GoodLinks = getEnvOrDefault("SYNC_GOODLINKS_FILE", c.Paths.GoodLinks)
	c.Paths.Vault = getEnvOrDefault("SYNC_VAULT_DIR", c.Paths.Vault)

	c.Cache.Type = getEnvOrDefault("SYNC_CACHE_TYPE", c.Cache.Type)
	c.Cache.Path = getEnvOrDefault("SYNC_CACHE_PATH", c.Cache.Path)
	c.Cache.Table = getEnvOrDefault("SYNC_CACHE_TABLE", c.Cache.Table)

	c.Fetch.Timeout = getEnvAsDurationOrDefault("SYNC_FETCH_TIMEOUT", c.Fetch.Timeout)
	c.Fetch.RatePerSecond = getEnvAsFloatOrDefault("SYNC_FETCH_RATE", c.Fetch.RatePerSecond)
	if hosts := getEnvAsListOrDefault("SYNC_BANNED_HOSTS", nil); hosts != nil {
		c.Fetch.BannedHosts = hosts
	}

	c.Log.Level = getEnvOrDefault("SYNC_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("SYNC_LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvOrDefault("SYNC_LOG_FILE", c.Log.File)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as a duration or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Paths.Links == "" {
		return errors.New("links file cannot be empty")
	}

	if c.Cache.Type != "sqlite" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'sqlite' or 'memory'")
	}

	if c.Cache.Type == "sqlite" && c.Cache.Path == "" {
		return errors.New("cache path cannot be empty when using sqlite cache")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Fetch.RatePerSecond < 0 {
		return errors.New("fetch rate cannot be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
