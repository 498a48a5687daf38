// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed = 1

// config is resolved once per Build call and shared by every constructor.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
	idFn     func(int) string
}

// Option customises a Build call.
type Option func(*config)

func newConfig(opts ...Option) config {
	c := config{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: DefaultWeightFn,
		idFn:     decimalID,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// decimalID names the i-th location "L<i>".
func decimalID(i int) string { return "L" + strconv.Itoa(i) }

// WithSeed makes weights reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWeightFn sets how connection weights are drawn. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithIDScheme sets the location naming for Ring and RandomSparse. Panics on nil.
// Grid always uses GridID.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithConstantWeight gives every connection weight w.
func WithConstantWeight(w float64) Option { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws integer minutes uniformly from [min, max].
func WithUniformWeight(min, max int) Option { return WithWeightFn(UniformWeightFn(min, max)) }
