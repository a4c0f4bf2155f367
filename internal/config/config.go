package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Session labels a scheduling session.
type Session struct {
	Name string `yaml:"name"`
}

// Config describes one scheduling session: who is playing, how many
// courts are free, and the match format.
type Config struct {
	Session   Session  `yaml:"session"`
	Players   []string `yaml:"players"`
	Courts    int      `yaml:"courts"`
	MatchType string   `yaml:"match_type"`
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}
	switch c.MatchType {
	case "singles", "doubles":
	default:
		return fmt.Errorf("match_type must be %q or %q, got %q", "singles", "doubles", c.MatchType)
	}
	return nil
}
