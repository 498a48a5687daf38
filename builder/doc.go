// SPDX-License-Identifier: MIT
// Package builder generates synthetic road networks: grids, rings and random
// sparse networks with reproducible weights. They feed benchmarks, property
// tests and the CLI "generate" command.
//
// Usage:
//
//	def, g, err := builder.Build("grid-20",
//	    []builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.Grid(20, 20))
//
// Constructors append locations and connections to one shared network, so
// several can be combined; the result is validated once by core.Build.
//
// Determinism:
//   - Location order and connection order depend only on the parameters.
//   - Weights depend only on the seed (WithSeed) or the supplied *rand.Rand.
//
// Errors:
//   - ErrTooFewLocations: a size parameter is below its minimum.
//   - ErrInvalidProbability: p outside [0, 1].
//   - ErrNilConstructor: a nil Constructor was passed.
//   - any core.ErrValidation from core.Build (for example a negative weight
//     produced by a custom WeightFn).
package builder
