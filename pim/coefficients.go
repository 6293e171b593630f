// Package pim: the nine Tau transition coefficients.
//
// Derivation:
//
//	Restricting the Lindblad dissipators of the five channels to the
//	diagonal sector of the permutation-symmetric basis yields a rate
//	equation for each population p(j, m) with at most nine contributions:
//	its own outflow (Tau1) and inflows from the eight lattice neighbors
//	reachable by one quantum jump. Every coefficient below is the exact
//	closed form of one such contribution, evaluated at the SOURCE
//	element's quantum numbers.
//
// Boundary behavior:
//
//	At j = 0 the ladder degenerates to the single element |0, 0⟩ and the
//	1/(2j·…) denominators lose meaning; the physical numerators vanish
//	there too, so each affected term is defined as exact 0 (the guards
//	below avoid the 0/0). Tau1's dephasing branch keeps the original
//	j = 0 special case γD·N/4.
//
// Sign structure (for non-negative rates): Tau1 ≤ 0 — it is the negative
// total outflow and lands on the diagonal; Tau2…Tau9 ≥ 0 — inflows from
// distinct elements.

package pim

import "fmt"

// validate guards the public Tau surface: (j, m) must be a valid basis
// element for the instance's N.
func (g *Generator) validate(tau string, j, m float64) error {
	if !g.space.Contains(j, m) {
		return fmt.Errorf("%s(%v, %v): element not in Dicke space of N=%d: %w",
			tau, j, m, g.n, ErrInvalidParameter)
	}

	return nil
}

// Tau1 returns the diagonal coefficient of |j, m⟩: the negative total
// outflow rate under all five channels. Always ≤ 0 for non-negative rates.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau1(j, m float64) (float64, error) {
	if err := g.validate("Tau1", j, m); err != nil {
		return 0, err
	}

	return g.tau1(j, m), nil
}

// Tau2 returns the inflow coefficient from source |j, m⟩ into |j, m−1⟩:
// same-ladder decay by collective emission plus the ladder-preserving part
// of independent loss.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau2(j, m float64) (float64, error) {
	if err := g.validate("Tau2", j, m); err != nil {
		return 0, err
	}

	return g.tau2(j, m), nil
}

// Tau3 returns the inflow coefficient from source |j, m⟩ into |j−1, m−1⟩:
// the ladder-lowering part of independent loss.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau3(j, m float64) (float64, error) {
	if err := g.validate("Tau3", j, m); err != nil {
		return 0, err
	}

	return g.tau3(j, m), nil
}

// Tau4 returns the inflow coefficient from source |j, m⟩ into |j+1, m−1⟩:
// the ladder-raising part of independent loss.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau4(j, m float64) (float64, error) {
	if err := g.validate("Tau4", j, m); err != nil {
		return 0, err
	}

	return g.tau4(j, m), nil
}

// Tau5 returns the inflow coefficient from source |j, m⟩ into |j−1, m⟩:
// dephasing-driven redistribution to the ladder below, at fixed m.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau5(j, m float64) (float64, error) {
	if err := g.validate("Tau5", j, m); err != nil {
		return 0, err
	}

	return g.tau5(j, m), nil
}

// Tau6 returns the inflow coefficient from source |j, m⟩ into |j+1, m⟩:
// dephasing-driven redistribution to the ladder above, at fixed m.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau6(j, m float64) (float64, error) {
	if err := g.validate("Tau6", j, m); err != nil {
		return 0, err
	}

	return g.tau6(j, m), nil
}

// Tau7 returns the inflow coefficient from source |j, m⟩ into |j−1, m+1⟩:
// the ladder-lowering part of independent pumping.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau7(j, m float64) (float64, error) {
	if err := g.validate("Tau7", j, m); err != nil {
		return 0, err
	}

	return g.tau7(j, m), nil
}

// Tau8 returns the inflow coefficient from source |j, m⟩ into |j, m+1⟩:
// same-ladder excitation by collective pumping plus the ladder-preserving
// part of independent pumping.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau8(j, m float64) (float64, error) {
	if err := g.validate("Tau8", j, m); err != nil {
		return 0, err
	}

	return g.tau8(j, m), nil
}

// Tau9 returns the inflow coefficient from source |j, m⟩ into |j+1, m+1⟩:
// the ladder-raising part of independent pumping.
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (g *Generator) Tau9(j, m float64) (float64, error) {
	if err := g.validate("Tau9", j, m); err != nil {
		return 0, err
	}

	return g.tau9(j, m), nil
}

// ---------- closed forms (callers guarantee a valid element) ----------

func (g *Generator) tau1(j, m float64) float64 {
	r, n := g.rates, float64(g.n)

	spontaneous := r.Emission * (1 + j - m) * (j + m)
	losses := r.Loss * (g.half + m)
	pump := r.Pumping * (g.half - m)
	collectivePump := r.CollectivePumping * (1 + j + m) * (j - m)

	var dephase float64
	if j == 0 {
		dephase = r.Dephasing * n / 4
	} else {
		dephase = r.Dephasing * (n/4 - m*m*(1+g.half)/(2*j*(j+1)))
	}

	return -(spontaneous + losses + pump + dephase + collectivePump)
}

func (g *Generator) tau2(j, m float64) float64 {
	spontaneous := g.rates.Emission * (1 + j - m) * (j + m)

	var losses float64
	if j != 0 {
		losses = g.rates.Loss * (g.half + 1) * (j - m + 1) * (j + m) / (2 * j * (j + 1))
	}

	return spontaneous + losses
}

func (g *Generator) tau3(j, m float64) float64 {
	if j == 0 {
		return 0
	}

	return g.rates.Loss * (j + m - 1) * (j + m) * (j + 1 + g.half) / (2 * j * (2*j + 1))
}

func (g *Generator) tau4(j, m float64) float64 {
	return g.rates.Loss * (j - m + 1) * (j - m + 2) * (g.half - j) / (2 * (j + 1) * (2*j + 1))
}

func (g *Generator) tau5(j, m float64) float64 {
	if j == 0 {
		return 0
	}

	return g.rates.Dephasing * (j - m) * (j + m) * (j + 1 + g.half) / (2 * j * (2*j + 1))
}

func (g *Generator) tau6(j, m float64) float64 {
	return g.rates.Dephasing * (j - m + 1) * (j + m + 1) * (g.half - j) / (2 * (j + 1) * (2*j + 1))
}

func (g *Generator) tau7(j, m float64) float64 {
	if j == 0 {
		return 0
	}

	return g.rates.Pumping * (j - m - 1) * (j - m) * (j + 1 + g.half) / (2 * j * (2*j + 1))
}

func (g *Generator) tau8(j, m float64) float64 {
	collectivePump := g.rates.CollectivePumping * (j - m) * (j + m + 1)

	var pump float64
	if j != 0 {
		pump = g.rates.Pumping * (1 + g.half) * (j - m) * (j + m + 1) / (2 * j * (j + 1))
	}

	return pump + collectivePump
}

func (g *Generator) tau9(j, m float64) float64 {
	return g.rates.Pumping * (j + m + 1) * (j + m + 2) * (g.half - j) / (2 * (j + 1) * (2*j + 1))
}
