// SPDX-License-Identifier: MIT

package equilibrium

import (
	"fmt"
	"math"
)

// FindPH returns the equilibrium pH of sys.
//
// Implementation:
//   - Stage 1: BuildEquation (input validation happens here).
//   - Stage 2: every root of the degree n+2 polynomial from the configured
//     root finder.
//   - Stage 3: keep roots inside the physical [H+] window (see package doc)
//     in root-finder order, then tag the result.
//
// Outcomes:
//   - NotFound  : no root survives; a warning is logged.
//   - Unique    : PH = [−log10(H)].
//   - Ambiguous : PH holds every survivor; a warning is logged.
//
// Errors are returned only for invalid input (see BuildEquation) or a
// failing root finder (ErrRootFinding). Ambiguity is never an error.
func FindPH(sys System, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	p, err := BuildEquation(sys)
	if err != nil {
		return Result{}, equilibriumErrorf(opFindPH, err)
	}

	roots, err := o.finder.Roots(p)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w: %w", opFindPH, ErrRootFinding, err)
	}

	candidates := acceptRoots(roots, len(sys.PKas), sys.Ca, sys.Counterion)

	switch len(candidates) {
	case 0:
		o.logger.Info("Something went wrong, failed to find a solution",
			"severity", "warning", "ca", sys.Ca, "pKas", sys.PKas, "counterion", sys.Counterion, "roots", len(roots))
		return Result{Outcome: NotFound}, nil
	case 1:
		return Result{Outcome: Unique, PH: []float64{-math.Log10(candidates[0])}}, nil
	default:
		pH := make([]float64, len(candidates))
		for i, h := range candidates {
			pH[i] = -math.Log10(h)
		}
		o.logger.Info("Something went wrong, found multiple solutions",
			"severity", "warning", "ca", sys.Ca, "pKas", sys.PKas, "counterion", sys.Counterion, "pH", pH)
		return Result{Outcome: Ambiguous, PH: pH}, nil
	}
}

// acceptRoots returns the real parts of the physically valid roots.
func acceptRoots(roots []complex128, n int, ca, counterion float64) []float64 {
	water := math.Pow(10, -PKw/2)
	lower := math.Min(water-Epsilon, Kw/(counterion+CounterionFloor))
	upper := float64(n)*ca + water + Epsilon

	var out []float64
	for _, s := range roots {
		re, im := real(s), imag(s)
		switch {
		case re < lower:
			// unphysically low [H+]
			continue
		case re > upper:
			// unphysically high [H+]
			continue
		case math.Abs(im/re) > Epsilon:
			// complex root
			continue
		}
		out = append(out, re)
	}
	return out
}
