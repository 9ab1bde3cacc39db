// Package config loads rescue-finder configuration from YAML and
// assembles the components it describes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grazioso/finder/pkg/finder/internalerr"
)

// Config is the top-level YAML configuration.
type Config struct {
	Store       StoreConfig         `yaml:"store"`
	Auth        AuthConfig          `yaml:"auth"`
	Disciplines map[string][]string `yaml:"disciplines"`
}

// StoreConfig locates the record store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig carries the dashboard credential pair.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if (c.Auth.Username == "") != (c.Auth.Password == "") {
		return fmt.Errorf("auth needs both username and password: %w", internalerr.ErrInvalidConfig)
	}
	for discipline, names := range c.Disciplines {
		if len(names) == 0 {
			return fmt.Errorf("discipline %q has an empty breed list: %w", discipline, internalerr.ErrInvalidConfig)
		}
	}
	return nil
}
