// SPDX-License-Identifier: MIT

// Package polyroots finds every root (real and complex) of a dense real
// polynomial and evaluates polynomials at real points.
//
// Roots follow the classic companion-matrix construction: for the monic
// form of p(x) = c0·x^d + c1·x^(d-1) + … + cd the d×d matrix
//
//	⎡ -c1/c0  -c2/c0  …  -cd/c0 ⎤
//	⎢   1       0     …    0    ⎥
//	⎢   0       1     …    0    ⎥
//	⎣   0       0     1    0    ⎦
//
// has exactly the roots of p as eigenvalues. The eigenproblem is delegated
// to gonum's general (non-symmetric) solver, so complex-conjugate pairs are
// reported as such.
//
// Coefficients are ordered highest power first. Leading zeros are stripped
// (they do not change the roots); trailing zeros become roots at exactly 0.
//
// Usage:
//
//	roots, err := polyroots.Roots([]float64{1, -3, 2}) // x² − 3x + 2
//	// roots ≈ [2, 1] (order as produced by the eigen solver)
//
//	v := polyroots.Polyval([]float64{1, -3, 2}, 2) // 0
//
// Complexity:
//
//   - Roots:   O(d³) time, O(d²) memory.
//   - Polyval: O(d) time, O(1) memory.
package polyroots
