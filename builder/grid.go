// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/cityroute/loader"
)

const minGridDim = 1

// GridID is the location name Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf("r%dc%d", r, c) }

// Grid returns a Constructor for a rows×cols street grid: every cell is
// connected to its right and bottom neighbors.
//
// Locations are added in row-major order; for each cell the right connection
// is drawn before the bottom one.
func Grid(rows, cols int) Constructor {
	return func(d *loader.Definition, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewLocations)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				addLocation(d, GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					connect(d, cfg, GridID(r, c), GridID(r, c+1))
				}
				if r+1 < rows {
					connect(d, cfg, GridID(r, c), GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
