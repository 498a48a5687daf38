// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cityroute/loader"
)

const (
	minRingLocations   = 3
	minRandomLocations = 1
)

// Ring returns a Constructor for a ring road of n locations (n ≥ 3).
func Ring(n int) Constructor {
	return func(d *loader.Definition, cfg config) error {
		if n < minRingLocations {
			return fmt.Errorf("Ring: n=%d < %d: %w", n, minRingLocations, ErrTooFewLocations)
		}
		for i := 0; i < n; i++ {
			addLocation(d, cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			connect(d, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// RandomSparse returns a Constructor that connects each unordered pair of
// n locations independently with probability p. Pairs are considered in
// (i, j), i < j order so a fixed seed gives a fixed network. The result may
// be disconnected.
func RandomSparse(n int, p float64) Constructor {
	return func(d *loader.Definition, cfg config) error {
		if n < minRandomLocations {
			return fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minRandomLocations, ErrTooFewLocations)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		for i := 0; i < n; i++ {
			addLocation(d, cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					connect(d, cfg, cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
