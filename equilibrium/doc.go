// SPDX-License-Identifier: MIT

// Package equilibrium solves for the pH of an n-protic acid solution,
// optionally titrated with a strong base.
//
// Two operations form the core:
//
//   - BuildEquation turns an acid System (total concentration, pKas,
//     counterion concentration) into the coefficients of the charge-balance
//     polynomial in [H+], highest power first. The polynomial always has
//     degree n+2 for n pKas.
//   - FindPH computes every root of that polynomial, keeps only the roots
//     that are physically meaningful, and returns a tagged Result:
//     Unique (one pH), Ambiguous (several pH values) or NotFound.
//
// Root acceptance (H = re + i·im):
//
//	re ≥ min(10^(−pKw/2) − ε, Kw/(counterion + δ))   lower physical bound
//	re ≤ n·ca + 10^(−pKw/2) + ε                       upper physical bound
//	|im/re| ≤ ε                                       numerically real
//
// with ε = 1e-8 and δ = 1e-16.
//
// Usage:
//
//	sys := equilibrium.System{Ca: 0.001, PKas: []float64{4.76}}
//	res, err := equilibrium.FindPH(sys, equilibrium.WithLogger(log))
//	if err != nil {
//		// invalid input: negative concentration, unordered pKas, ...
//	}
//	if pH, ok := res.Value(); ok {
//		fmt.Printf("pH = %.2f\n", pH)
//	}
//
// Every function here is pure and safe for concurrent use.
package equilibrium
