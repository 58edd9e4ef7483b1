// Package config resolves site settings from an optional YAML file plus
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the web binary needs at startup.
type Config struct {
	Addr         string `yaml:"addr"`
	TemplatesDir string `yaml:"templates_dir"`
	PublicDir    string `yaml:"public_dir"`

	// DeckSource is the card data source: an HTTP(S) URL or a local file.
	// Empty serves the built-in sample deck.
	DeckSource string `yaml:"deck_source"`

	// Presentation-mode batching tiers.
	MobileBatch    int `yaml:"mobile_batch"`
	DesktopBatch   int `yaml:"desktop_batch"`
	MobileMaxWidth int `yaml:"mobile_max_width"`

	Dev bool `yaml:"dev"`
}

// Default returns the shipped settings.
func Default() Config {
	return Config{
		Addr:           ":8080",
		TemplatesDir:   "templates",
		PublicDir:      "public",
		DeckSource:     "data/cards.json",
		MobileBatch:    12,
		DesktopBatch:   24,
		MobileMaxWidth: 600,
	}
}

// Load reads the YAML file when path is non-empty, then applies environment
// overrides. Missing file at the default path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	// Port resolution: prefer BOARDGAME_WEB_PORT, then Cloud Run's PORT.
	if p := os.Getenv("BOARDGAME_WEB_PORT"); p != "" {
		c.Addr = ":" + p
	} else if p := os.Getenv("PORT"); p != "" {
		c.Addr = ":" + p
	}
	if v := os.Getenv("BOARDGAME_WEB_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("BOARDGAME_WEB_DECK"); v != "" {
		c.DeckSource = strings.TrimSpace(v)
	}
	if os.Getenv("BOARDGAME_WEB_DEV") != "" || os.Getenv("DEV") != "" {
		c.Dev = true
	}
}
