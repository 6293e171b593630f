// Package pim: configuration types & validated construction.
//
// Design goals (mirroring the library-wide conventions):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Immutable after construction: every Generator method is a pure query.
//   - Fail fast: all parameters validated before any allocation.

package pim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/piqs/dicke"
)

// Rates holds the five non-negative physical rate constants of the
// permutation-symmetric channel set. The zero value (all channels off) is
// valid and yields the zero generator.
type Rates struct {
	Emission          float64 // γE — collective emission
	Loss              float64 // γL — independent (per-unit) decay
	Dephasing         float64 // γD — independent dephasing
	Pumping           float64 // γP — independent pumping
	CollectivePumping float64 // γCP — collective pumping
}

// validate enforces the numeric policy: every rate finite and >= 0.
func (r Rates) validate() error {
	for _, f := range [5]struct {
		name string
		v    float64
	}{
		{"Emission", r.Emission},
		{"Loss", r.Loss},
		{"Dephasing", r.Dephasing},
		{"Pumping", r.Pumping},
		{"CollectivePumping", r.CollectivePumping},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("rate %s = %v: %w", f.name, f.v, ErrInvalidParameter)
		}
	}

	return nil
}

// Generator owns the immutable (N, rates) configuration and the canonical
// Dicke space enumeration, and derives the sparse generator matrix of the
// reduced population dynamics. Safe for concurrent use after New.
type Generator struct {
	n     int
	half  float64 // N/2, cached for the coefficient closed forms
	rates Rates
	space *dicke.Space
}

// New constructs a Generator for n two-level units and the given rate set.
//
// Implementation:
//   - Stage 1: validate n ≥ 1 and the rate numeric policy.
//   - Stage 2: build the canonical dicke.Space once; Tau evaluation and
//     assembly reuse it for every query.
//
// Errors: ErrInvalidParameter (n < 1, negative or non-finite rate).
// Complexity: O(N²) — dominated by the space enumeration.
func New(n int, r Rates) (*Generator, error) {
	if n < 1 {
		return nil, fmt.Errorf("pim.New(%d): %w", n, ErrInvalidParameter)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("pim.New(%d): %w", n, err)
	}

	space, err := dicke.NewSpace(n)
	if err != nil {
		return nil, fmt.Errorf("pim.New(%d): %w", n, err)
	}

	return &Generator{n: n, half: float64(n) / 2, rates: r, space: space}, nil
}

// N returns the number of two-level units. Complexity: O(1).
func (g *Generator) N() int { return g.n }

// Rates returns the configured rate set (a value copy). Complexity: O(1).
func (g *Generator) Rates() Rates { return g.rates }

// Space returns the canonical Dicke space enumeration backing this
// generator. The space is immutable; sharing it is safe.
func (g *Generator) Space() *dicke.Space { return g.space }

// InitialPopulation returns the fully excited symmetric preparation sized
// for this generator: unit mass at |N/2, N/2⟩. Complexity: O(size).
func (g *Generator) InitialPopulation() []float64 {
	p := make([]float64, g.space.Size())
	p[0] = 1

	return p
}
