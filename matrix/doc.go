// SPDX-License-Identifier: MIT

// Package matrix provides sparse, square, compressed-sparse-row (CSR)
// matrices for generator assembly, together with the deterministic
// coordinate Builder that produces them.
//
// 🚀 Why CSR?
//
//	The permutation-invariant generator is banded: every row holds at most
//	nine non-zeros (one per structural neighbor relation), independent of
//	the basis size. Dense storage would waste O(size²) memory on zeros;
//	CSR keeps exactly the structural entries and makes the consumer-facing
//	matrix-vector product an O(nnz) scan — this is what keeps large-N
//	ensembles tractable.
//
// ✨ Key features:
//   - Builder: coordinate (triplet) accumulation with duplicate summation
//   - Compress: deterministic row-sorted CSR (fixed loop orders, no map iteration)
//   - At: O(log nnz-in-row) bisection lookup
//   - MulVec: y = M·x for external time-evolution consumers
//   - ColSums: probability-conservation audit (generator columns sum to zero)
//
// ⚙️ Usage:
//
//	b, err := matrix.NewBuilder(16)
//	_ = b.Add(0, 0, -12.0)
//	_ = b.Add(1, 0, 7.0)
//	_ = b.Add(7, 0, 5.0)
//	m := b.Compress()
//	y, err := m.MulVec(x)
//
// Numeric policy: Add rejects NaN and ±Inf at ingestion — a generator entry
// is always a finite rate, and rejecting early keeps every downstream sum
// finite by construction.
//
// Complexity quicksheet:
//   - Add: O(1) amortized; Compress: O(nnz log nnz); At: O(log k);
//     MulVec, ColSums: O(nnz).
package matrix
