// Package pim: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the pim
// package, matched by callers via errors.Is.

package pim

import "errors"

// ErrInvalidParameter is returned when N is not a positive integer, when any
// rate is negative or non-finite, or when a (j, m) pair passed to a Tau
// coefficient is not a valid basis element for the instance's N.
// Message prefixed "pim: ..." per the package-prefix convention.
var ErrInvalidParameter = errors.New("pim: invalid parameter")
