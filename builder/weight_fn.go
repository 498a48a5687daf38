// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// WeightFn draws one connection weight in minutes.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn draws integer minutes in [1, 10]. Integer weights keep path
// sums exact, which makes generated networks convenient for tests.
func DefaultWeightFn(rng *rand.Rand) float64 {
	return float64(1 + rng.Intn(10))
}

// ConstantWeightFn always returns value.
func ConstantWeightFn(value float64) WeightFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformWeightFn draws integers uniformly from [min, max]. Panics if max < min.
func UniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic("builder: UniformWeightFn max < min")
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 { return float64(min + rng.Intn(span)) }
}
