package config

import (
	"fmt"

	"github.com/grazioso/finder/pkg/finder/auth"
	"github.com/grazioso/finder/pkg/finder/breeds"
	"github.com/grazioso/finder/pkg/finder/filter"
)

// Loader loads the configuration file and constructs components
type Loader struct {
	ConfigPath string
}

// Components holds the constructed configuration components
type Components struct {
	Sets      breeds.Sets
	Engine    *filter.Engine
	Gate      *auth.Gate
	StorePath string
}

// Load reads the configuration and returns initialized components. A
// missing config path yields defaults: the fixed breed table, no
// credential gate, and an empty store path.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Sets: breeds.Default()}

	if l.ConfigPath != "" {
		cfg, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		if len(cfg.Disciplines) > 0 {
			comp.Sets = breeds.FromConfig(cfg.Disciplines)
		}
		if cfg.Auth.Username != "" {
			comp.Gate = auth.NewGate(auth.Credentials{
				Username: cfg.Auth.Username,
				Password: cfg.Auth.Password,
			})
		}
		comp.StorePath = cfg.Store.Path
	}

	comp.Engine = filter.NewEngine(comp.Sets)
	return comp, nil
}
