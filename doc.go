// SPDX-License-Identifier: MIT

// Package acidbase is a small numeric toolkit for acid–base equilibrium
// chemistry: pH of n-protic acids, titration curves, speciation and
// buffer capacity.
//
// Packages:
//
//	polyroots/   : dense polynomial roots (companion matrix eigenvalues) & evaluation
//	equilibrium/ : charge-balance polynomial and the filtered pH solver
//	speciation/  : fractional species distribution vs pH
//	buffer/      : buffer capacity β(pH)
//	titration/   : counterion sweeps and volumetric titration curves
//	cmd/acidbase : command-line front end
//
// Quick example:
//
//	res, err := equilibrium.FindPH(equilibrium.System{Ca: 0.01, PKas: []float64{4.76}})
//	if err != nil {
//		return err
//	}
//	if pH, ok := res.Value(); ok {
//		fmt.Printf("pH = %.2f\n", pH) // pH = 3.38
//	}
//
// All computation is pure and deterministic; no package keeps global state.
//
//	go get github.com/katalvlaran/acidbase
package acidbase

// Version of the module.
const Version = "0.3.0"
