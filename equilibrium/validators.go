// SPDX-License-Identifier: MIT

package equilibrium

import "math"

// Validate checks every System invariant in a fixed order:
// finite values → Ca ≥ 0 → Counterion ≥ 0 → n ≥ 1 → strictly increasing pKas.
// The first violation is returned wrapped with the "Validate" tag.
func (s System) Validate() error {
	if isNonFinite(s.Ca) || isNonFinite(s.Counterion) {
		return equilibriumErrorf(opValidate, ErrNaNInf)
	}
	for _, pKa := range s.PKas {
		if isNonFinite(pKa) {
			return equilibriumErrorf(opValidate, ErrNaNInf)
		}
	}
	if s.Ca < 0 {
		return equilibriumErrorf(opValidate, ErrNegativeConcentration)
	}
	if s.Counterion < 0 {
		return equilibriumErrorf(opValidate, ErrNegativeCounterion)
	}
	if len(s.PKas) == 0 {
		return equilibriumErrorf(opValidate, ErrNoPKa)
	}
	if !strictlyIncreasing(s.PKas) {
		return equilibriumErrorf(opValidate, ErrPKaOrder)
	}

	return nil
}

// strictlyIncreasing reports whether every element exceeds its predecessor.
func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
