package loader

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/cityroute/core"
)

// DefaultSpeeds maps accepted highway types to a travel speed in km/h, used
// when a way carries no usable maxspeed tag.
var DefaultSpeeds = map[string]float64{
	"motorway":       110,
	"motorway_link":  50,
	"trunk":          90,
	"trunk_link":     50,
	"primary":        70,
	"primary_link":   30,
	"secondary":      60,
	"secondary_link": 30,
	"tertiary":       50,
	"tertiary_link":  30,
	"unclassified":   40,
	"residential":    30,
	"living_street":  10,
	"service":        20,
	"road":           30,
}

// amenityCategories maps OSM amenity values to location categories.
var amenityCategories = map[string]core.Category{
	"hospital":     core.CategoryHospital,
	"clinic":       core.CategoryHospital,
	"fire_station": core.CategoryEmergencyService,
	"police":       core.CategoryEmergencyService,
	"school":       core.CategoryHighRiskZone,
	"kindergarten": core.CategoryHighRiskZone,
	"marketplace":  core.CategoryHighRiskZone,
}

// OSMOptions tunes DecodeOSM.
type OSMOptions struct {
	// Name of the resulting Definition.
	Name string
	// Speeds overrides DefaultSpeeds; only listed highway types are imported.
	Speeds map[string]float64
}

type osmNode struct {
	point orb.Point
	tags  osm.Tags
	uses  int
}

// LoadOSM reads an OpenStreetMap XML extract.
func LoadOSM(path string, opts OSMOptions) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read network %s: %w", path, err)
	}
	defer f.Close()

	return DecodeOSM(f, opts)
}

// DecodeOSM converts an OpenStreetMap XML extract into a Definition.
//
// Ways tagged with an accepted highway type become roads. A node becomes a
// location when it is a way endpoint or is shared by several ways; the road
// between two consecutive locations along a way becomes one connection whose
// weight is its great-circle length divided by the way's speed, in minutes.
// One-way restrictions are ignored since connections are undirected. Parallel
// roads between the same two locations keep the fastest one.
//
// Locations are named by their "name" tag when it is unique, "node/<id>"
// otherwise, and categorised from their "amenity" tag.
func DecodeOSM(r io.Reader, opts OSMOptions) (*Definition, error) {
	speeds := opts.Speeds
	if speeds == nil {
		speeds = DefaultSpeeds
	}

	nodes := make(map[osm.NodeID]*osmNode)
	var nodeOrder []osm.NodeID
	var ways []*osm.Way

	scanner := osmxml.New(context.Background(), r)
	defer scanner.Close()
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = &osmNode{point: orb.Point{o.Lon, o.Lat}, tags: o.Tags}
			nodeOrder = append(nodeOrder, o.ID)
		case *osm.Way:
			if _, ok := speeds[o.Tags.Find("highway")]; ok && len(o.Nodes) >= 2 {
				ways = append(ways, o)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decode osm network: %w", err)
	}

	// Count uses; endpoints count twice so they always become locations.
	for _, w := range ways {
		for i, wn := range w.Nodes {
			n, ok := nodes[wn.ID]
			if !ok {
				return nil, fmt.Errorf("%w: way %d references missing node %d", core.ErrValidation, w.ID, wn.ID)
			}
			n.uses++
			if i == 0 || i == len(w.Nodes)-1 {
				n.uses++
			}
		}
	}

	d := &Definition{Name: opts.Name}
	ids := osmLocationIDs(nodes, nodeOrder)
	for _, id := range nodeOrder {
		n := nodes[id]
		if n.uses < 2 {
			continue
		}
		d.Locations = append(d.Locations, LocationDef{
			ID:       ids[id],
			Category: string(amenityCategories[n.tags.Find("amenity")]),
		})
	}

	type pair struct{ a, b string }
	best := make(map[pair]int)
	for _, w := range ways {
		kmh := wayspeed(w.Tags, speeds)
		start := w.Nodes[0].ID
		var meters float64
		for i := 1; i < len(w.Nodes); i++ {
			prev, cur := nodes[w.Nodes[i-1].ID], nodes[w.Nodes[i].ID]
			meters += geo.Distance(prev.point, cur.point)
			if cur.uses < 2 {
				continue
			}
			a, b := ids[start], ids[w.Nodes[i].ID]
			start, seg := w.Nodes[i].ID, meters
			meters = 0
			if a == b {
				continue
			}
			minutes := math.Round(seg/(kmh*1000/60)*100) / 100
			if a > b {
				a, b = b, a
			}
			if j, ok := best[pair{a, b}]; ok {
				if minutes < d.Connections[j].Minutes {
					d.Connections[j].Minutes = minutes
				}
				continue
			}
			best[pair{a, b}] = len(d.Connections)
			d.Connections = append(d.Connections, ConnectionDef{From: a, To: b, Minutes: minutes})
		}
	}

	return d, nil
}

// osmLocationIDs names every node: its unique "name" tag, or node/<id>.
func osmLocationIDs(nodes map[osm.NodeID]*osmNode, order []osm.NodeID) map[osm.NodeID]string {
	seen := make(map[string]int)
	for _, id := range order {
		if n := nodes[id]; n.uses >= 2 {
			if name := n.tags.Find("name"); name != "" {
				seen[name]++
			}
		}
	}
	out := make(map[osm.NodeID]string, len(nodes))
	for _, id := range order {
		name := nodes[id].tags.Find("name")
		if name != "" && seen[name] == 1 {
			out[id] = name
			continue
		}
		out[id] = "node/" + strconv.FormatInt(int64(id), 10)
	}

	return out
}

// wayspeed returns the way's speed in km/h from maxspeed ("50", "30 mph")
// or the highway default.
func wayspeed(tags osm.Tags, speeds map[string]float64) float64 {
	def := speeds[tags.Find("highway")]
	raw := strings.TrimSpace(tags.Find("maxspeed"))
	if raw == "" {
		return def
	}
	factor := 1.0
	if v, ok := strings.CutSuffix(raw, "mph"); ok {
		raw, factor = strings.TrimSpace(v), 1.609344
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return def
	}

	return v * factor
}
