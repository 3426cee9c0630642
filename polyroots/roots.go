// SPDX-License-Identifier: MIT

package polyroots

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Finder computes all roots of a polynomial given highest-power-first
// coefficients. Roots satisfies it; tests substitute their own.
type Finder interface {
	Roots(coeffs []float64) ([]complex128, error)
}

// FinderFunc adapts a plain function to Finder.
type FinderFunc func(coeffs []float64) ([]complex128, error)

// Roots calls f(coeffs).
func (f FinderFunc) Roots(coeffs []float64) ([]complex128, error) { return f(coeffs) }

// Companion is the default Finder backed by Roots.
var Companion Finder = FinderFunc(Roots)

// Roots returns all d roots of the polynomial
//
//	coeffs[0]·x^d + coeffs[1]·x^(d-1) + … + coeffs[d]
//
// Implementation:
//   - Stage 1: reject empty or non-finite input.
//   - Stage 2: strip leading zeros; count trailing zeros (roots at 0).
//   - Stage 3: build the companion matrix of the trimmed polynomial and
//     return its eigenvalues followed by the zero roots.
//
// The returned slice has length len(coeffs) − leadingZeros − 1.
// A constant non-zero polynomial yields an empty, non-nil slice.
//
// Errors: ErrEmptyPolynomial, ErrNaNInf, ErrZeroPolynomial, ErrNoConvergence.
func Roots(coeffs []float64) ([]complex128, error) {
	if len(coeffs) == 0 {
		return nil, rootsErrorf(opRoots, ErrEmptyPolynomial)
	}
	for _, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, rootsErrorf(opRoots, ErrNaNInf)
		}
	}

	lead := 0
	for lead < len(coeffs) && coeffs[lead] == 0 {
		lead++
	}
	if lead == len(coeffs) {
		return nil, rootsErrorf(opRoots, ErrZeroPolynomial)
	}
	end := len(coeffs)
	for coeffs[end-1] == 0 {
		end--
	}
	zeros := len(coeffs) - end
	p := coeffs[lead:end]
	d := len(p) - 1

	roots := make([]complex128, 0, d+zeros)
	if d > 0 {
		vals, err := companionEigenvalues(p)
		if err != nil {
			return nil, rootsErrorf(opRoots, err)
		}
		roots = append(roots, vals...)
	}
	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}

	return roots, nil
}

// companionEigenvalues builds the d×d companion matrix of p (p[0] != 0,
// len(p) ≥ 2) and returns its eigenvalues.
func companionEigenvalues(p []float64) ([]complex128, error) {
	d := len(p) - 1
	if d == 1 {
		return []complex128{complex(-p[1]/p[0], 0)}, nil
	}

	a := mat.NewDense(d, d, nil)
	for j := 0; j < d; j++ {
		a.Set(0, j, -p[j+1]/p[0])
	}
	for i := 1; i < d; i++ {
		a.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, ErrNoConvergence
	}

	return eig.Values(nil), nil
}

// Polyval evaluates the polynomial at x with Horner's scheme.
// An empty coefficient list evaluates to 0.
func Polyval(coeffs []float64, x float64) float64 {
	var acc float64
	for _, c := range coeffs {
		acc = acc*x + c
	}

	return acc
}

// PolyvalAbs evaluates Σ|c_k|·|x|^(d−k), the magnitude scale of the terms
// summed by Polyval. It is the natural denominator for a relative residual.
func PolyvalAbs(coeffs []float64, x float64) float64 {
	ax := math.Abs(x)
	var acc float64
	for _, c := range coeffs {
		acc = acc*ax + math.Abs(c)
	}

	return acc
}
