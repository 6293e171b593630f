// Package dicke: closed-form space combinatorics.
//
// Purpose:
//   - Size of the reduced (j, m) basis for N units and its exact inverse.
//   - Count of distinct j ladders.
//   - Exact multiplicity d(N, j) of each ladder in the 2^N Hilbert space.
//
// Determinism & Performance:
//   - All functions are pure and allocation-free except Degeneracy, which
//     allocates big-integer intermediates.
//   - NumStates/NumLadders: O(1). NumTwoLevel: O(1). Degeneracy: O(N).

package dicke

import (
	"fmt"
	"math"
	"math/big"
)

// NumStates returns the total number of Dicke basis elements |j, m⟩ for n
// two-level units.
//
// Closed form:
//
//	n even: (n/2 + 1)²
//	n odd:  (n + 1)(n + 3) / 4
//
// Errors: ErrInvalidParameter if n < 1.
// Complexity: O(1).
func NumStates(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("NumStates(%d): %w", n, ErrInvalidParameter)
	}
	if n%2 == 0 {
		half := n/2 + 1

		return half * half, nil
	}

	return (n + 1) * (n + 3) / 4, nil
}

// NumTwoLevel returns the unique number of two-level units n whose Dicke
// basis has exactly `states` elements — the inverse of NumStates.
//
// Implementation:
//   - Stage 1: invert each parity branch of the closed form —
//     even: n = 2(√states − 1); odd: n = √(4·states + 1) − 2.
//   - Stage 2: round each candidate and validate by re-applying NumStates,
//     so floating-point inversion can never accept a near miss.
//
// Errors: ErrInvalidDimension when no positive integer n reproduces `states`.
// Complexity: O(1).
func NumTwoLevel(states int) (int, error) {
	if states >= 1 {
		even := int(math.Round(2 * (math.Sqrt(float64(states)) - 1)))
		odd := int(math.Round(math.Sqrt(4*float64(states)+1) - 2))
		for _, n := range [2]int{even, odd} {
			if n < 1 {
				continue
			}
			if s, err := NumStates(n); err == nil && s == states {
				return n, nil
			}
		}
	}

	return 0, fmt.Errorf("NumTwoLevel(%d): %w", states, ErrInvalidDimension)
}

// NumLadders returns the number of distinct j ladders for n units:
// ⌊n/2⌋ + 1.
//
// Errors: ErrInvalidParameter if n < 1.
// Complexity: O(1).
func NumLadders(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("NumLadders(%d): %w", n, ErrInvalidParameter)
	}

	return n/2 + 1, nil
}

// Degeneracy returns the exact multiplicity d(N, j) of the ladder j among n
// spin-1/2 units in the SU(2) decomposition:
//
//	d(N, j) = (2j+1) · N! / ((N/2+j+1)! · (N/2−j)!)
//	        = C(N, N/2−j) − C(N, N/2−j−1)
//
// The second (hockey-stick) form is what is computed, with big-integer
// binomials, so the result is exact for any n — no factorial overflow.
// The partition invariant Σ_j d(N, j)(2j+1) = 2^N holds exactly.
//
// Errors: ErrInvalidParameter if n < 1 or j is not a valid ladder value for
// n (outside [jmin, n/2] or wrong half-integer parity).
// Complexity: O(N) big-integer multiplications.
func Degeneracy(n int, j float64) (*big.Int, error) {
	if err := validLadder(n, j); err != nil {
		return nil, fmt.Errorf("Degeneracy(%d, %v): %w", n, j, err)
	}

	// k = N/2 − j counts flipped spins at the ladder top; exact integer here.
	k := int64(math.Round(float64(n)/2 - j))
	d := new(big.Int).Binomial(int64(n), k)
	if k > 0 {
		d.Sub(d, new(big.Int).Binomial(int64(n), k-1))
	}

	return d, nil
}

// validLadder reports whether j is one of the allowed ladder values for n:
// 2j must be an integer in [0, n] with the parity of n.
func validLadder(n int, j float64) error {
	if n < 1 {
		return ErrInvalidParameter
	}
	twoJ := 2 * j
	if twoJ != math.Trunc(twoJ) {
		return ErrInvalidParameter
	}
	t := int(twoJ)
	if t < 0 || t > n || (n-t)%2 != 0 {
		return ErrInvalidParameter
	}

	return nil
}

// validElement reports whether (j, m) is a valid basis element for n:
// j a valid ladder value and m ∈ {−j, −j+1, …, j} in integer steps.
func validElement(n int, j, m float64) error {
	if err := validLadder(n, j); err != nil {
		return err
	}
	twoM := 2 * m
	if twoM != math.Trunc(twoM) {
		return ErrInvalidParameter
	}
	t := int(twoM)
	twoJ := int(2 * j)
	// m steps down from j by integers, so 2m shares 2j's parity and |m| ≤ j.
	if t < -twoJ || t > twoJ || (twoJ-t)%2 != 0 {
		return ErrInvalidParameter
	}

	return nil
}
