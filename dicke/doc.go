// Package dicke provides the combinatorial backbone of the permutation-
// symmetric description of N identical two-level systems: basis sizing,
// ladder degeneracies, canonical |j, m⟩ enumeration, and initial states.
//
// 🚀 What is the Dicke space?
//
//	N spin-1/2 units decompose into angular-momentum ladders labelled by
//	j = N/2, N/2−1, … down to 0 (N even) or 1/2 (N odd). Each ladder holds
//	2j+1 levels m = j, j−1, …, −j, and occurs with multiplicity d(N, j) in
//	the full 2^N-dimensional Hilbert space. For permutation-symmetric
//	dynamics only the (j, m) labels matter, so the state space collapses
//	from 2^N onto O(N²) population degrees of freedom.
//
// ✨ Key features:
//   - NumStates / NumTwoLevel — basis size and its exact inverse
//   - NumLadders — count of distinct j ladders
//   - Degeneracy — exact d(N, j) via big-integer binomials (no overflow)
//   - Space — canonical enumeration with O(1) closed-form flat indexing
//   - InitialPopulation / InitialState — population vectors over the basis
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/piqs/dicke"
//
//	s, err := dicke.NewSpace(6)        // 16 basis elements
//	k, err := s.FlatIndex(2, 0)        // position of |2, 0⟩ → 9
//	p, err := dicke.InitialPopulation(6) // all mass at |3, 3⟩
//
// Canonical order (load-bearing — the generator's matrix layout depends
// on it): decreasing j outer, decreasing m inner. For N = 6:
//
//	|3,3⟩ |3,2⟩ … |3,−3⟩ |2,2⟩ … |2,−2⟩ |1,1⟩ … |1,−1⟩ |0,0⟩
//
// Performance:
//
//   - NumStates, NumLadders, FlatIndex: O(1)
//   - NewSpace: O(N²) — one record per basis element
//   - Degeneracy: O(N) big-integer multiplications
//
// All functions are pure; Space is immutable after construction and safe
// for concurrent use.
package dicke
