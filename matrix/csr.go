// SPDX-License-Identifier: MIT

// Package matrix - CSR storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly compressed-sparse-row buffer with the
//     explicit slice layout rowPtr/colIdx/vals.
//   - Guarantee safety at the public surface: At/Row/MulVec return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - At: O(log k) bisection in the row; Row: O(k) copy;
//     MulVec/ColSums/String: O(nnz).

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- formatting literals ----------

const (
	_fmtEntry = "(%d,%d)=%g"
	_fmtSep   = ", "
)

// CSR is a square sparse matrix in compressed-sparse-row form. Immutable
// after Compress; safe for concurrent reads.
type CSR struct {
	side   int
	rowPtr []int     // len side+1; row i occupies [rowPtr[i], rowPtr[i+1])
	colIdx []int     // column of each stored entry, ascending within a row
	vals   []float64 // stored values, parallel to colIdx
}

// Side returns the matrix side. Complexity: O(1).
func (m *CSR) Side() int { return m.side }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.vals) }

// At retrieves the element at (i, j); absent coordinates read as 0.
//
// Errors: ErrOutOfRange if i or j is outside [0, Side()).
// Complexity: O(log k) where k is the number of entries in row i.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.side || j < 0 || j >= m.side {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.vals[k], nil
	}

	return 0, nil
}

// Row returns copies of the stored column indices and values of row i.
// Columns are ascending; both slices are owned by the caller.
//
// Errors: ErrOutOfRange if i is outside [0, Side()).
// Complexity: O(k) where k is the number of entries in row i.
func (m *CSR) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.side {
		return nil, nil, fmt.Errorf("CSR.Row(%d): %w", i, ErrOutOfRange)
	}

	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols = append(cols, m.colIdx[lo:hi]...)
	vals = append(vals, m.vals[lo:hi]...)

	return cols, vals, nil
}

// MulVec returns y = M·x. For a generator matrix M and population vector x
// this is the right-hand side ẋ of the reduced rate equations.
//
// Errors: ErrDimensionMismatch if len(x) != Side().
// Complexity: O(nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.side {
		return nil, fmt.Errorf("CSR.MulVec(len %d, side %d): %w", len(x), m.side, ErrDimensionMismatch)
	}

	y := make([]float64, m.side)
	for i := 0; i < m.side; i++ {
		sum := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.vals[k] * x[m.colIdx[k]]
		}
		y[i] = sum
	}

	return y, nil
}

// ColSums returns the per-column entry sums. For a probability-conserving
// generator every sum is zero up to floating-point tolerance; exposing the
// audit here lets consumers assert conservation without densifying.
//
// Complexity: O(nnz).
func (m *CSR) ColSums() []float64 {
	sums := make([]float64, m.side)
	for i := 0; i < m.side; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sums[m.colIdx[k]] += m.vals[k]
		}
	}

	return sums
}

// String renders the stored entries as "(i,j)=v" triplets in row-major
// order — intended for debugging small matrices, not serialization.
func (m *CSR) String() string {
	var sb strings.Builder
	first := true
	for i := 0; i < m.side; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if !first {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, _fmtEntry, i, m.colIdx[k], m.vals[k])
			first = false
		}
	}

	return sb.String()
}
