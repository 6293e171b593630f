// Package dicke: canonical enumeration arena & flat indexing.
//
// Purpose:
//   - Materialize the ordered |j, m⟩ record list once per N.
//   - Map (j, m) → flat index in O(1) via a closed arithmetic form instead
//     of a reverse-lookup map (fixed loop orders, no map iteration).
//
// The canonical order — decreasing j outer, decreasing m inner — is
// load-bearing: the pim generator places matrix entries by these indices,
// and any reordering silently corrupts the assembled dynamics.

package dicke

import "fmt"

// Element is one Dicke basis label |j, m⟩. J and M are exact half-integers
// (halves are exactly representable in binary floating point), with
// M ∈ {−J, −J+1, …, J}.
type Element struct {
	J float64 // ladder (total effective spin)
	M float64 // position within the ladder (inversion level)
}

// String renders the element in ket notation, e.g. "|3, -1⟩" or "|1.5, 0.5⟩".
func (e Element) String() string {
	return fmt.Sprintf("|%v, %v⟩", e.J, e.M)
}

// Space is the canonical enumeration of the Dicke basis for a fixed N.
// Immutable after construction; safe for concurrent use.
type Space struct {
	n     int       // number of two-level units
	jmax  float64   // top ladder, n/2
	elems []Element // canonical order: decreasing j, then decreasing m
}

// NewSpace builds the enumeration arena for n units.
//
// Implementation:
//   - Stage 1: validate n and size the arena via NumStates.
//   - Stage 2: walk j from n/2 down in unit steps, m from j down to −j.
//     Half-integer decrements are exact, so the loop is deterministic.
//
// Errors: ErrInvalidParameter if n < 1.
// Complexity: O(N²) time and memory (one record per basis element).
func NewSpace(n int) (*Space, error) {
	size, err := NumStates(n)
	if err != nil {
		return nil, fmt.Errorf("NewSpace: %w", err)
	}

	jmax := float64(n) / 2
	elems := make([]Element, 0, size)
	for j := jmax; j >= 0; j-- {
		for m := j; m >= -j; m-- {
			elems = append(elems, Element{J: j, M: m})
		}
	}

	return &Space{n: n, jmax: jmax, elems: elems}, nil
}

// N returns the number of two-level units the space was built for.
// Complexity: O(1).
func (s *Space) N() int { return s.n }

// Size returns the total number of basis elements, NumStates(N).
// Complexity: O(1).
func (s *Space) Size() int { return len(s.elems) }

// Elements returns the basis in canonical order. The slice is a copy: the
// caller may mutate it freely without touching the arena.
// Complexity: O(size).
func (s *Space) Elements() []Element {
	out := make([]Element, len(s.elems))
	copy(out, s.elems)

	return out
}

// Contains reports whether (j, m) is a valid basis element for this space.
// Complexity: O(1).
func (s *Space) Contains(j, m float64) bool {
	return validElement(s.n, j, m) == nil
}

// FlatIndex returns the position of |j, m⟩ in the canonical enumeration.
//
// Closed form: with ℓ = jmax − j ladders preceding j (each of size
// 2·jmax+1−2i for i < ℓ),
//
//	index = ℓ·(N + 2 − ℓ) + (j − m)
//
// Errors: ErrInvalidParameter if (j, m) is not a valid element.
// Complexity: O(1).
func (s *Space) FlatIndex(j, m float64) (int, error) {
	if err := validElement(s.n, j, m); err != nil {
		return 0, fmt.Errorf("FlatIndex(%v, %v): %w", j, m, err)
	}

	ladder := int(s.jmax - j)

	return ladder*(s.n+2-ladder) + int(j-m), nil
}

// At is the inverse of FlatIndex: the element stored at flat index k.
//
// Errors: ErrInvalidParameter if k is outside [0, Size()).
// Complexity: O(1).
func (s *Space) At(k int) (Element, error) {
	if k < 0 || k >= len(s.elems) {
		return Element{}, fmt.Errorf("At(%d): %w", k, ErrInvalidParameter)
	}

	return s.elems[k], nil
}
