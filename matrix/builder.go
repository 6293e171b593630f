// SPDX-License-Identifier: MIT

// Package matrix - coordinate (triplet) Builder → CSR compression.
//
// Purpose:
//   - Accept (row, col, value) contributions in any order during assembly.
//   - Guarantee safety at the public surface: Add returns errors instead of
//     panicking, and enforces the finite-value numeric policy.
//   - Keep compression deterministic: per-row buckets, in-row sort by
//     column, duplicate coordinates summed in a fixed order.
//
// Complexity quicksheet:
//   - NewBuilder: O(side); Add: O(1) amortized; Compress: O(nnz log nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ---------- error context tags ----------

const (
	ctxAdd      = "Add"      // method tag used in error wrappers
	ctxCompress = "Compress" // method tag used in error wrappers
)

// builderErrorf wraps an error with a uniform Builder context and callsite
// indices, preserving the sentinel via %w.
func builderErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Builder.%s(%d,%d): %w", method, row, col, err)
}

// entry is one pending contribution within a row bucket.
type entry struct {
	col int     // destination column
	val float64 // finite contribution (policy-checked at Add)
}

// Builder accumulates coordinate-format contributions for a square sparse
// matrix of fixed side, then compresses them into an immutable CSR.
// Not safe for concurrent Add; compress once, share the CSR freely.
type Builder struct {
	side int
	rows [][]entry // per-row buckets preserve a deterministic fill order
	nnz  int       // pending entries, duplicates included
}

// NewBuilder returns an empty Builder for a side×side matrix.
//
// Errors: ErrBadSide if side <= 0.
// Complexity: O(side).
func NewBuilder(side int) (*Builder, error) {
	if side <= 0 {
		return nil, fmt.Errorf("NewBuilder(%d): %w", side, ErrBadSide)
	}

	return &Builder{side: side, rows: make([][]entry, side)}, nil
}

// Side returns the configured matrix side. Complexity: O(1).
func (b *Builder) Side() int { return b.side }

// Add records the contribution v at (row, col). Contributions to the same
// coordinate accumulate (summed at Compress). Zero values are accepted but
// dropped during compression so they never inflate the sparsity pattern.
//
// Errors:
//   - ErrOutOfRange if row or col is outside [0, side).
//   - ErrNaNInf if v is NaN or ±Inf (numeric policy: rates are finite).
//
// Complexity: O(1) amortized.
func (b *Builder) Add(row, col int, v float64) error {
	if row < 0 || row >= b.side || col < 0 || col >= b.side {
		return builderErrorf(ctxAdd, row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return builderErrorf(ctxAdd, row, col, ErrNaNInf)
	}

	b.rows[row] = append(b.rows[row], entry{col: col, val: v})
	b.nnz++

	return nil
}

// Compress materializes the accumulated contributions into a CSR matrix.
// Within each row, entries are sorted by column (stable order), duplicate
// coordinates summed left-to-right, and exact zeros dropped. The Builder
// remains usable afterwards; the returned CSR is independent of it.
//
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func (b *Builder) Compress() *CSR {
	m := &CSR{
		side:   b.side,
		rowPtr: make([]int, b.side+1),
		colIdx: make([]int, 0, b.nnz),
		vals:   make([]float64, 0, b.nnz),
	}

	for i := 0; i < b.side; i++ {
		bucket := b.rows[i]
		// Stable sort keeps duplicate summation order deterministic.
		sort.SliceStable(bucket, func(p, q int) bool { return bucket[p].col < bucket[q].col })

		for k := 0; k < len(bucket); {
			col, sum := bucket[k].col, 0.0
			for ; k < len(bucket) && bucket[k].col == col; k++ {
				sum += bucket[k].val
			}
			if sum != 0 {
				m.colIdx = append(m.colIdx, col)
				m.vals = append(m.vals, sum)
			}
		}
		m.rowPtr[i+1] = len(m.vals)
	}

	return m
}
