package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ErrMissingURI indicates that no Neo4j URI was configured.
var ErrMissingURI = errors.New("loader: neo4j URI is required")

// Record is one row of a Cypher result, keyed by column name.
type Record map[string]any

// GraphClient is the small slice of a graph database the loader needs.
// NewNeo4jClient provides the Bolt implementation; tests use an in-memory one.
type GraphClient interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	Close(ctx context.Context) error
}

// Neo4jOptions configures NewNeo4jClient.
type Neo4jOptions struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// Cypher used to exchange networks stored as
// (:Location {id, category})-[:ROAD {minutes}]-(:Location).
const (
	cypherLocations = `MATCH (l:Location) RETURN l.id AS id, coalesce(l.category, "") AS category ORDER BY id`
	cypherRoads     = `MATCH (a:Location)-[r:ROAD]->(b:Location) RETURN a.id AS from, b.id AS to, r.minutes AS minutes ORDER BY from, to`
	cypherPutNodes  = `UNWIND $locations AS l MERGE (n:Location {id: l.id}) SET n.category = l.category`
	cypherPutRoads  = `UNWIND $roads AS r MATCH (a:Location {id: r.from}), (b:Location {id: r.to}) MERGE (a)-[e:ROAD]->(b) SET e.minutes = r.minutes`
)

// NewNeo4jClient opens a Bolt connection and verifies it.
func NewNeo4jClient(ctx context.Context, opts Neo4jOptions) (GraphClient, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	auth := neo4j.NoAuth()
	if opts.Username != "" {
		auth = neo4j.BasicAuth(opts.Username, opts.Password, "")
	}
	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(c *neo4j.Config) {
		if opts.MaxConnections > 0 {
			c.MaxConnectionPoolSize = opts.MaxConnections
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &neo4jClient{driver: driver, database: opts.Database}, nil
}

type neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func (c *neo4jClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	return c.run(ctx, neo4j.AccessModeRead, cypher, params)
}

func (c *neo4jClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	return c.run(ctx, neo4j.AccessModeWrite, cypher, params)
}

func (c *neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *neo4jClient) run(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) ([]Record, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database, AccessMode: mode})
	defer session.Close(ctx)

	res, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	var out []Record
	for res.Next(ctx) {
		rec := res.Record()
		row := make(Record, len(rec.Keys))
		for _, key := range rec.Keys {
			row[key], _ = rec.Get(key)
		}
		out = append(out, row)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadNeo4j reads the network stored in the database behind client.
// A road stored in both directions is merged by core.Build like any mirrored
// connection.
func ReadNeo4j(ctx context.Context, client GraphClient, name string) (*Definition, error) {
	locs, err := client.ExecuteRead(ctx, cypherLocations, nil)
	if err != nil {
		return nil, fmt.Errorf("read neo4j locations: %w", err)
	}
	roads, err := client.ExecuteRead(ctx, cypherRoads, nil)
	if err != nil {
		return nil, fmt.Errorf("read neo4j roads: %w", err)
	}

	d := &Definition{Name: name}
	for i, rec := range locs {
		id, ok := rec["id"].(string)
		if !ok {
			return nil, fmt.Errorf("neo4j location row %d: id is %T, want string", i, rec["id"])
		}
		cat, _ := rec["category"].(string)
		d.Locations = append(d.Locations, LocationDef{ID: id, Category: cat})
	}
	for i, rec := range roads {
		from, okF := rec["from"].(string)
		to, okT := rec["to"].(string)
		if !okF || !okT {
			return nil, fmt.Errorf("neo4j road row %d: endpoints must be strings", i)
		}
		minutes, err := number(rec["minutes"])
		if err != nil {
			return nil, fmt.Errorf("neo4j road row %d (%s—%s): %w", i, from, to, err)
		}
		d.Connections = append(d.Connections, ConnectionDef{From: from, To: to, Minutes: minutes})
	}

	return d, nil
}

// WriteNeo4j stores d in the database behind client, merging on location ID.
func WriteNeo4j(ctx context.Context, client GraphClient, d *Definition) error {
	locs := make([]map[string]any, len(d.Locations))
	for i, l := range d.Locations {
		locs[i] = map[string]any{"id": l.ID, "category": l.Category}
	}
	roads := make([]map[string]any, len(d.Connections))
	for i, c := range d.Connections {
		roads[i] = map[string]any{"from": c.From, "to": c.To, "minutes": c.Minutes}
	}
	if _, err := client.ExecuteWrite(ctx, cypherPutNodes, map[string]any{"locations": locs}); err != nil {
		return fmt.Errorf("write neo4j locations: %w", err)
	}
	if _, err := client.ExecuteWrite(ctx, cypherPutRoads, map[string]any{"roads": roads}); err != nil {
		return fmt.Errorf("write neo4j roads: %w", err)
	}

	return nil
}

// number accepts the numeric types Bolt hands back.
func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("minutes is %T, want number", v)
	}
}
