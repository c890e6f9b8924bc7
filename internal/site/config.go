// Package site holds the static site configuration: owner info,
// navigation, and the social-links table, loaded from YAML.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"devsite/internal/models"
)

//go:embed site.yaml
var defaultConfig []byte

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Config is the site content and appearance configuration.
type Config struct {
	Owner        string              `yaml:"owner"`
	Tagline      string              `yaml:"tagline"`
	About        string              `yaml:"about"`
	DefaultTheme string              `yaml:"default_theme"`
	Nav          []NavLink           `yaml:"nav"`
	Social       []models.SocialLink `yaml:"social"`
}

// Default returns the configuration embedded at build time.
func Default() (*Config, error) {
	return Parse(defaultConfig)
}

// Load reads a configuration file, overriding the embedded default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Owner) == "" {
		return errors.New("owner is required")
	}

	if c.DefaultTheme == "" {
		c.DefaultTheme = "light"
	}
	if c.DefaultTheme != "light" && c.DefaultTheme != "dark" {
		return errors.New("default_theme must be 'light' or 'dark'")
	}

	for i := range c.Social {
		if err := c.Social[i].Validate(); err != nil {
			return fmt.Errorf("social link %d: %w", i+1, err)
		}
	}

	return nil
}
