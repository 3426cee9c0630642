// SPDX-License-Identifier: MIT

package equilibrium

import (
	"math"

	"github.com/katalvlaran/acidbase/polyroots"
)

// padWidth is the number of zero slots added on each side of the
// cumulative dissociation constants.
const padWidth = 2

// BuildEquation returns the n+3 coefficients of the charge-balance
// polynomial Σ p[k]·[H+]^(n+2−k) = 0 for sys, highest power first.
//
// Implementation:
//   - Stage 1: validate sys (see System.Validate).
//   - Stage 2: cumulative constants K_j = 10^(−Σ_{l≤j} pKa_l), j = 1..n,
//     laid out as pad = [0, 0, 1, K_1, …, K_n, 0, 0] so pad[i] = K_{i−2}.
//   - Stage 3: for k = 0..n+2
//     p[k] = pad[k+2] − (k−1)·ca·pad[k+1] − Kw·pad[k] + counterion·pad[k+1].
//
// The leading coefficient is always 1 and the constant term is −Kw·K_n.
//
// Errors: ErrNaNInf, ErrNegativeConcentration, ErrNegativeCounterion,
// ErrNoPKa, ErrPKaOrder.
//
// Complexity: O(n) time and memory.
func BuildEquation(sys System) ([]float64, error) {
	if err := sys.Validate(); err != nil {
		return nil, equilibriumErrorf(opBuildEquation, err)
	}

	n := len(sys.PKas)
	pad := make([]float64, n+1+2*padWidth)
	pad[padWidth] = 1.0
	var cum float64
	for j, pKa := range sys.PKas {
		cum += pKa
		pad[padWidth+1+j] = math.Pow(10, -cum)
	}

	p := make([]float64, n+3)
	for k := range p {
		charge := float64(k - 1)
		p[k] = pad[k+2] - charge*sys.Ca*pad[k+1] - Kw*pad[k]
		p[k] += sys.Counterion * pad[k+1]
	}

	return p, nil
}

// Residual returns the relative charge-balance error of pH against coeffs:
// |P(H)| / Σ|p_k|·H^(d−k) with H = 10^(−pH). A true root gives ≈ 0.
func Residual(coeffs []float64, pH float64) float64 {
	h := math.Pow(10, -pH)
	v := math.Abs(polyroots.Polyval(coeffs, h))
	scale := polyroots.PolyvalAbs(coeffs, h)
	if scale == 0 {
		return v
	}
	return v / scale
}
