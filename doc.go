// Package piqs is a permutation-invariant quantum solver core: compact,
// polynomial-size bookkeeping for the dissipative dynamics of N identical
// two-level systems under collective and local incoherent processes.
//
// 🚀 What is piqs?
//
//	A deterministic, zero-dependency library that brings together:
//		• Dicke-space combinatorics: basis sizes, ladder counts, exact degeneracies
//		• Canonical |j, m⟩ enumeration with O(1) flat-index lookup
//		• Initial population vectors for standard symmetric preparations
//		• The nine Tau transition coefficients of the diagonal rate equations
//		• Sparse (CSR) assembly of the resulting Markov generator matrix
//
// ✨ Why choose piqs?
//
//   - Exponential → quadratic — 2^N states collapse onto O(N²) Dicke labels
//   - Exact arithmetic — degeneracies via big integers, no factorial overflow
//   - Rock-solid guarantees — sentinel errors, probability-conserving columns
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	dicke/  — Dicke space indexing: sizes, degeneracies, enumeration, initial states
//	matrix/ — sparse CSR storage for the assembled generator + vector products
//	pim/    — the permutation-invariant generator: Tau coefficients & assembly
//
// Quick ASCII example (N = 6, rows are m, columns are ladders j):
//
//	| 3, 3⟩
//	| 3, 2⟩  | 2, 2⟩
//	| 3, 1⟩  | 2, 1⟩  | 1, 1⟩
//	| 3, 0⟩  | 2, 0⟩  | 1, 0⟩  | 0, 0⟩
//	| 3,-1⟩  | 2,-1⟩  | 1,-1⟩
//	| 3,-2⟩  | 2,-2⟩
//	| 3,-3⟩
//
//	16 basis elements instead of 2⁶ = 64 pure states.
//
// The generator matrix produced by pim feeds any external ODE or matrix
// exponentiation routine; piqs itself stops at assembly, by scope.
//
//	go get github.com/katalvlaran/piqs
package piqs
