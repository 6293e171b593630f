// Package dicke: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dicke
// package. All functions MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions.

package dicke

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dicke: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with
// fmt.Errorf("ctx: %w", ErrX) at call sites when coordinates are essential;
// callers still match via errors.Is.

var (
	// ErrInvalidParameter is returned when N is not a positive integer, when
	// j is not a valid ladder value for N, when (j, m) is not a valid basis
	// element, or when a flat index lies outside [0, NumStates(N)).
	ErrInvalidParameter = errors.New("dicke: invalid parameter")

	// ErrInvalidDimension is returned by NumTwoLevel when no positive
	// integer N reproduces the requested basis size under NumStates.
	ErrInvalidDimension = errors.New("dicke: no two-level count matches dimension")
)
