// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrTooFewLocations indicates a size parameter (n, rows, cols) below its minimum.
	ErrTooFewLocations = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNilConstructor indicates a nil Constructor passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)
