package perturb

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cityroute/core"
)

// ErrBadFactor indicates a scaling factor that is negative, NaN or infinite.
var ErrBadFactor = fmt.Errorf("%w: perturb: scale factor must be finite and non-negative", core.ErrValidation)

// Perturbation sets the connection {A, B} to Weight.
type Perturbation struct {
	A      string
	B      string
	Weight float64
}

// String renders p as "A—B=W".
func (p Perturbation) String() string {
	return fmt.Sprintf("%s—%s=%g", p.A, p.B, p.Weight)
}

// WithModifiedWeight returns a new Graph identical to g except that the
// connection between a and b carries newWeight in both directions.
//
// Errors:
//   - core.ErrConnectionNotFound if a and b are not directly connected.
//   - core.ErrLocationNotFound if either endpoint is unknown.
//   - core.ErrNegativeWeight / core.ErrInfiniteWeight for an invalid newWeight.
//
// Complexity: O(V + E) for the copy.
func WithModifiedWeight(g *core.Graph, a, b string, newWeight float64) (*core.Graph, error) {
	out, err := g.WithWeight(a, b, newWeight)
	if err != nil {
		return nil, fmt.Errorf("perturb %s—%s: %w", a, b, err)
	}

	return out, nil
}

// Apply applies every perturbation in order and returns the final copy.
// Either all perturbations apply or none does: on error nothing is returned
// and g is untouched.
//
// A later perturbation of the same pair overrides an earlier one.
// Apply with no perturbations returns a deep copy of g.
func Apply(g *core.Graph, ps ...Perturbation) (*core.Graph, error) {
	if len(ps) == 0 {
		return g.Clone(), nil
	}

	cur := g
	var err error
	for i, p := range ps {
		cur, err = WithModifiedWeight(cur, p.A, p.B, p.Weight)
		if err != nil {
			return nil, fmt.Errorf("perturbation %d: %w", i, err)
		}
	}

	return cur, nil
}

// Scale multiplies the weight of {a, b} by factor, the usual way to express
// "this road is three times slower at rush hour".
func Scale(g *core.Graph, a, b string, factor float64) (*core.Graph, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadFactor, factor)
	}
	w, err := g.Weight(a, b)
	if err != nil {
		return nil, fmt.Errorf("perturb %s—%s: %w", a, b, err)
	}

	return WithModifiedWeight(g, a, b, w*factor)
}

// Parse reads a perturbation written as "A:B=W" (the CLI form).
func Parse(s string) (Perturbation, error) {
	pair, weight, ok := strings.Cut(s, "=")
	if !ok {
		return Perturbation{}, fmt.Errorf("%w: perturbation %q: want A:B=W", core.ErrValidation, s)
	}
	a, b, ok := strings.Cut(pair, ":")
	if !ok || a == "" || b == "" {
		return Perturbation{}, fmt.Errorf("%w: perturbation %q: want A:B=W", core.ErrValidation, s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return Perturbation{}, fmt.Errorf("%w: perturbation %q: %v", core.ErrValidation, s, err)
	}

	return Perturbation{A: strings.TrimSpace(a), B: strings.TrimSpace(b), Weight: w}, nil
}
