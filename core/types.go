// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Location, Connection and Graph declarations plus the sentinel errors of the core package.
// Policy:
//   - Every specific error wraps exactly one category sentinel (ErrValidation or ErrNotFound).
//   - Graph carries no mutators; all state is fixed by Build.

package core

import (
	"errors"
	"fmt"
)

// Category sentinels. Callers match with errors.Is.
var (
	// ErrValidation marks malformed input: a bad graph definition or a bad weight.
	ErrValidation = errors.New("core: validation failed")

	// ErrNotFound marks a reference to a location or connection absent from the graph.
	ErrNotFound = errors.New("core: not found")
)

// Specific sentinels, each wrapping a category sentinel.
var (
	// ErrEmptyLocationID indicates a location with a zero-length ID.
	ErrEmptyLocationID = fmt.Errorf("%w: location ID is empty", ErrValidation)

	// ErrDuplicateLocation indicates the same location ID was declared twice.
	ErrDuplicateLocation = fmt.Errorf("%w: duplicate location", ErrValidation)

	// ErrUnknownLocation indicates a connection endpoint that was never declared.
	ErrUnknownLocation = fmt.Errorf("%w: connection references unknown location", ErrValidation)

	// ErrNegativeWeight indicates a weight below zero, or NaN.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrValidation)

	// ErrInfiniteWeight indicates a weight of +Inf.
	ErrInfiniteWeight = fmt.Errorf("%w: infinite weight", ErrValidation)

	// ErrSelfLoop indicates a connection from a location to itself.
	ErrSelfLoop = fmt.Errorf("%w: self-loop connection", ErrValidation)

	// ErrConflictingWeight indicates the same pair listed twice with different weights.
	ErrConflictingWeight = fmt.Errorf("%w: duplicate connection with conflicting weight", ErrValidation)

	// ErrLocationNotFound indicates a lookup of an unknown location.
	ErrLocationNotFound = fmt.Errorf("%w: location", ErrNotFound)

	// ErrConnectionNotFound indicates a lookup of a connection that does not exist.
	ErrConnectionNotFound = fmt.Errorf("%w: connection", ErrNotFound)
)

// Category tags a location for downstream reporting and target selection.
// The shortest-path engine never reads it.
type Category string

// Categories used by the sample city network. Any other string is accepted.
const (
	CategoryNone             Category = ""
	CategoryHospital         Category = "Hospital"
	CategoryHighRiskZone     Category = "High-Risk Zone"
	CategoryEmergencyService Category = "Emergency Service"
	CategoryPublicPlace      Category = "Public Place"
	CategoryResidential      Category = "Residential"
	CategoryIntersection     Category = "Intersection"
)

// Location names a node of the road network.
type Location struct {
	// ID uniquely identifies the location within its Graph.
	ID string

	// Category is optional metadata.
	Category Category
}

// Connection is an undirected road between A and B with a travel time in minutes.
type Connection struct {
	A      string
	B      string
	Weight float64
}

// arc is one direction of a Connection as stored in the adjacency list.
type arc struct {
	to     string
	weight float64
}

// Graph is an immutable, undirected, weighted road network.
//
// Graph has no mutating methods after Build returns, so any number of
// goroutines may read it concurrently without locking.
type Graph struct {
	// order holds location IDs in declaration order.
	order []string

	// categories maps location ID → Category; presence marks a known location.
	categories map[string]Category

	// adjacency maps location ID → outgoing arcs in connection-declaration order.
	// Each Connection contributes one arc to each endpoint.
	adjacency map[string][]arc

	// connections is the canonical list, one entry per undirected pair.
	connections []Connection
}
