package analysis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// Sentinel errors.
var (
	ErrNilResult      = fmt.Errorf("%w: analysis: result is nil", core.ErrValidation)
	ErrNoTargets      = fmt.Errorf("%w: analysis: no targets given", core.ErrValidation)
	ErrTargetNotFound = fmt.Errorf("analysis: target %w", core.ErrNotFound)
	ErrNoSources      = fmt.Errorf("%w: analysis: no sources given", core.ErrValidation)
	ErrBadWorkers     = errors.New("analysis: worker count must be positive")
)

// Ranked is one row of RankByDistance.
type Ranked struct {
	Location string
	Distance float64
}

// Winner names the side of a comparison with the smaller distance.
type Winner int

const (
	// Tie: both distances are equal (including both unreachable).
	Tie Winner = iota
	// WinnerA: the first result is strictly closer.
	WinnerA
	// WinnerB: the second result is strictly closer.
	WinnerB
)

// String returns "tie", "A" or "B".
func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	default:
		return "tie"
	}
}

// TargetComparison is the per-target row of a Comparison.
type TargetComparison struct {
	Target    string
	DistanceA float64
	DistanceB float64
	Winner    Winner
	Diff      float64 // |DistanceA - DistanceB|; +Inf if exactly one side is unreachable
	Tie       bool
}

// Comparison is the outcome of CompareSources.
type Comparison struct {
	SourceA string
	SourceB string
	Targets []TargetComparison
	MeanA   float64
	MeanB   float64
}

// Better reports which source has the smaller mean distance.
func (c *Comparison) Better() Winner {
	switch {
	case c.MeanA < c.MeanB:
		return WinnerA
	case c.MeanB < c.MeanA:
		return WinnerB
	default:
		return Tie
	}
}

// Recommended returns the source with the smaller mean distance, or "" and
// false when the means are equal.
func (c *Comparison) Recommended() (string, bool) {
	switch c.Better() {
	case WinnerA:
		return c.SourceA, true
	case WinnerB:
		return c.SourceB, true
	default:
		return "", false
	}
}

// RouteChange is the outcome of DetectRouteChange.
type RouteChange struct {
	Target     string
	BeforePath []string
	AfterPath  []string
	Before     float64
	After      float64
	Changed    bool    // paths differ as location sequences
	Delay      float64 // After - Before, see DetectRouteChange for unreachable cases
}

// Assignment is the best source for one target.
type Assignment struct {
	Target   string
	Source   string // "" if no source reaches Target
	Distance float64
}

// Plan is the outcome of Dispatch.
type Plan struct {
	Assignments []Assignment
	// Coverage is the mean distance over all targets per source.
	Coverage map[string]float64
	// Recommended is the source with the smallest coverage, ties by ID.
	Recommended string
}
