package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort        = 8080
	DefaultCatalogPath = "releases.yaml"
)

// Config holds application configuration.
// Follows Single Responsibility - only holds configuration data.
type Config struct {
	Port int `yaml:"port"`

	// Path to the YAML release catalog (repositories and releases)
	CatalogPath string `yaml:"catalog_path"`

	Links LinkConfig `yaml:"links"`

	Verbose bool `yaml:"verbose"`
}

// LinkConfig controls which providers get pull request URLs.
type LinkConfig struct {
	// BitbucketURLs enables /pull-requests/<id> links for Bitbucket repositories.
	// Off by default: only GitHub links are built.
	BitbucketURLs bool `yaml:"bitbucket_urls"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:        DefaultPort,
		CatalogPath: DefaultCatalogPath,
	}
}

// Load builds the configuration from defaults, the optional YAML file at path
// and environment variables, in that order of precedence. A .env file in the
// working directory is loaded first; variables already set are not overridden.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			c.Port = p
		}
	}

	c.CatalogPath = getEnvOrDefault("CATALOG_PATH", c.CatalogPath)

	if v := os.Getenv("BITBUCKET_PR_URLS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BITBUCKET_PR_URLS: %w", err)
		}
		c.Links.BitbucketURLs = enabled
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
