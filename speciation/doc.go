// SPDX-License-Identifier: MIT

// Package speciation computes the fractional distribution of the n+1
// protonation states of an n-protic acid as a function of pH.
//
// For species j (0 = fully protonated H_nA, n = fully deprotonated A^n−):
//
//	num_0 = 1
//	num_{j+1} = num_j · 10^(pH − pKa_j)
//	α_j = num_j / Σ_k num_k
//
// Fractions at every pH sample sum to 1. No root finding is involved.
package speciation
