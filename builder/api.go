// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/loader"
)

// Constructor appends locations and connections to d.
type Constructor func(d *loader.Definition, cfg config) error

// Build runs every constructor in order on one network named name and
// validates the result.
func Build(name string, opts []Option, cons ...Constructor) (*loader.Definition, *core.Graph, error) {
	cfg := newConfig(opts...)
	d := &loader.Definition{Name: name}
	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(d, cfg); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}
	g, err := d.Graph()
	if err != nil {
		return nil, nil, err
	}

	return d, g, nil
}

// connect appends one connection with a freshly drawn weight.
func connect(d *loader.Definition, cfg config, a, b string) {
	d.Connections = append(d.Connections, loader.ConnectionDef{From: a, To: b, Minutes: cfg.weightFn(cfg.rng)})
}

func addLocation(d *loader.Definition, id string) {
	d.Locations = append(d.Locations, loader.LocationDef{ID: id})
}
