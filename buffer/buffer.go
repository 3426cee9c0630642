// SPDX-License-Identifier: MIT

// Package buffer evaluates the buffer capacity β of a monoprotic weak acid
// solution:
//
//	β(pH) = ln10 · [ ca·Ka·H/(H+Ka)² + Kw/H + H ],  H = 10^(−pH), Ka = 10^(−pKa)
//
// The first term is the acid/conjugate-base buffer and peaks at pH = pKa;
// the other two are the contributions of water itself.
package buffer

import (
	"math"

	"github.com/katalvlaran/acidbase/equilibrium"
)

// Beta evaluates β at every pH sample. The result has the same length as pH.
func Beta(pH []float64, ca, pKa float64) []float64 {
	out := make([]float64, len(pH))
	for i, x := range pH {
		out[i] = BetaAt(x, ca, pKa)
	}
	return out
}

// BetaAt evaluates β at a single pH.
func BetaAt(pH, ca, pKa float64) float64 {
	return math.Ln10 * (AcidTerm(pH, ca, pKa) + equilibrium.Kw/math.Pow(10, -pH) + math.Pow(10, -pH))
}

// AcidTerm returns ca·Ka·H/(H+Ka)², the buffering term without the ln10
// factor and without the water contributions.
func AcidTerm(pH, ca, pKa float64) float64 {
	h := math.Pow(10, -pH)
	ka := math.Pow(10, -pKa)
	return ca * ka * h / ((h + ka) * (h + ka))
}

// Max returns the pH sample with the largest β and that β.
// ok is false for an empty sample set.
func Max(pH []float64, ca, pKa float64) (atPH, beta float64, ok bool) {
	for i, b := range Beta(pH, ca, pKa) {
		if !ok || b > beta {
			atPH, beta, ok = pH[i], b, true
		}
	}
	return atPH, beta, ok
}
