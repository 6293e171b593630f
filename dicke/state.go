// Package dicke: initial population vectors.
//
// Purpose:
//   - Build the population vector over the canonical enumeration for the
//     standard symmetric preparations. Both constructors are pure: the
//     returned slice is owned by the caller, and this package never touches
//     it again.

package dicke

import "fmt"

// InitialPopulation returns the fully excited, maximally symmetric
// preparation: unit mass at |N/2, N/2⟩ — flat index 0 — and zero elsewhere.
// The vector has length NumStates(n).
//
// Errors: ErrInvalidParameter if n < 1.
// Complexity: O(size).
func InitialPopulation(n int) ([]float64, error) {
	size, err := NumStates(n)
	if err != nil {
		return nil, fmt.Errorf("InitialPopulation: %w", err)
	}

	p := make([]float64, size)
	p[0] = 1 // |N/2, N/2⟩ heads the canonical order

	return p, nil
}

// InitialState returns a population vector with unit mass concentrated at an
// arbitrary basis element |j, m⟩ and zero elsewhere.
//
// Errors: ErrInvalidParameter if n < 1 or (j, m) is not a valid element.
// Complexity: O(size).
func InitialState(n int, j, m float64) ([]float64, error) {
	s, err := NewSpace(n)
	if err != nil {
		return nil, fmt.Errorf("InitialState: %w", err)
	}
	k, err := s.FlatIndex(j, m)
	if err != nil {
		return nil, fmt.Errorf("InitialState: %w", err)
	}

	p := make([]float64, s.Size())
	p[k] = 1

	return p, nil
}
