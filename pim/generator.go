// Package pim: sparse assembly of the population-dynamics generator.
//
// Algorithm Outline:
//  1. Enumerate the canonical Dicke space (decreasing j, then decreasing m).
//  2. For each target element |j, m⟩ at flat row k, walk the fixed table of
//     nine structural relations. Each relation names the source offset
//     (Δj, Δm) and the coefficient formula bound to it.
//  3. If the source |j+Δj, m+Δm⟩ is a valid element, evaluate the
//     coefficient at the source's quantum numbers and place it at
//     (k, FlatIndex(source)). Offsets are pairwise distinct, so no two
//     relations collide on a cell.
//  4. Compress the accumulated triplets into CSR.
//
// Guarantees:
//   - Square matrix of side NumStates(N).
//   - Every column sums to zero up to floating-point round-off (probability
//     conservation: Tau1 is exactly the negative sum of the inflows its
//     source feeds elsewhere).
//   - Entries exist only on the nine structural relations (bandedness:
//     at most 9 non-zeros per row at any N).
//
// Complexity: O(basis size) = O(N²) time; O(nnz) ≤ 9·size memory.

package pim

import (
	"fmt"

	"github.com/katalvlaran/piqs/matrix"
)

// relation binds one structural neighbor kind to its source offset and
// coefficient formula — the fixed (predicate, formula) table: the predicate
// is space membership of the offset source, shared by all nine.
type relation struct {
	dj, dm float64
	coeff  func(*Generator, float64, float64) float64
}

// relations is ordered tau1..tau9; the order is fixed for deterministic
// assembly but carries no semantics (offsets locate every entry).
var relations = [9]relation{
	{dj: 0, dm: 0, coeff: (*Generator).tau1},
	{dj: 0, dm: 1, coeff: (*Generator).tau2},
	{dj: 1, dm: 1, coeff: (*Generator).tau3},
	{dj: -1, dm: 1, coeff: (*Generator).tau4},
	{dj: 1, dm: 0, coeff: (*Generator).tau5},
	{dj: -1, dm: 0, coeff: (*Generator).tau6},
	{dj: 1, dm: -1, coeff: (*Generator).tau7},
	{dj: 0, dm: -1, coeff: (*Generator).tau8},
	{dj: -1, dm: -1, coeff: (*Generator).tau9},
}

// Matrix assembles and returns the sparse generator of the reduced
// population dynamics, M, defined by dp/dt = M·p over the canonical
// enumeration. See the package doc for the relation layout.
//
// The assembly is a pure function of the immutable configuration: calling
// Matrix twice yields equal matrices.
//
// Complexity: O(basis size) evaluations, O(nnz log nnz) compression.
func (g *Generator) Matrix() (*matrix.CSR, error) {
	b, err := matrix.NewBuilder(g.space.Size())
	if err != nil {
		return nil, fmt.Errorf("pim.Matrix: %w", err)
	}

	for row, el := range g.space.Elements() {
		for _, rel := range relations {
			srcJ, srcM := el.J+rel.dj, el.M+rel.dm
			if !g.space.Contains(srcJ, srcM) {
				continue // no neighbor beyond the lattice boundary
			}

			v := rel.coeff(g, srcJ, srcM)
			if v == 0 {
				continue // channel inactive at this boundary; keep the pattern tight
			}

			col, err := g.space.FlatIndex(srcJ, srcM)
			if err != nil {
				return nil, fmt.Errorf("pim.Matrix: %w", err)
			}
			if err = b.Add(row, col, v); err != nil {
				return nil, fmt.Errorf("pim.Matrix: %w", err)
			}
		}
	}

	return b.Compress(), nil
}
