package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// ErrUnsupportedFormat is returned by Load for an unknown file extension.
var ErrUnsupportedFormat = errors.New("loader: unsupported network format")

// LocationDef declares one location.
type LocationDef struct {
	ID       string `yaml:"id" toml:"id"`
	Category string `yaml:"category,omitempty" toml:"category,omitempty"`
}

// ConnectionDef declares one undirected road.
type ConnectionDef struct {
	From    string  `yaml:"from" toml:"from"`
	To      string  `yaml:"to" toml:"to"`
	Minutes float64 `yaml:"minutes" toml:"minutes"`
}

// Definition is the serialisable form of a road network.
type Definition struct {
	Name        string          `yaml:"name" toml:"name"`
	Locations   []LocationDef   `yaml:"locations" toml:"locations"`
	Connections []ConnectionDef `yaml:"connections" toml:"connections"`
}

// Graph validates d and builds the corresponding core.Graph.
func (d *Definition) Graph() (*core.Graph, error) {
	ls := make([]core.Location, len(d.Locations))
	for i, l := range d.Locations {
		ls[i] = core.Location{ID: l.ID, Category: core.Category(l.Category)}
	}
	cs := make([]core.Connection, len(d.Connections))
	for i, c := range d.Connections {
		cs[i] = core.Connection{A: c.From, B: c.To, Weight: c.Minutes}
	}
	g, err := core.Build(ls, cs)
	if err != nil {
		return nil, fmt.Errorf("network %q: %w", d.Name, err)
	}

	return g, nil
}

// FromGraph converts g back into a Definition named name.
// Locations keep their declaration order; connections appear once each.
func FromGraph(name string, g *core.Graph) *Definition {
	d := &Definition{Name: name}
	for _, l := range g.DeclaredLocations() {
		d.Locations = append(d.Locations, LocationDef{ID: l.ID, Category: string(l.Category)})
	}
	for _, c := range g.Connections() {
		d.Connections = append(d.Connections, ConnectionDef{From: c.A, To: c.B, Minutes: c.Weight})
	}

	return d
}
