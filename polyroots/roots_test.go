// SPDX-License-Identifier: MIT

package polyroots_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/katalvlaran/acidbase/polyroots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// sortByReal orders roots by real part, then imaginary part, so tests do not
// depend on the eigen solver's output order.
func sortByReal(r []complex128) []complex128 {
	out := append([]complex128(nil), r...)
	sort.Slice(out, func(i, j int) bool {
		if real(out[i]) != real(out[j]) {
			return real(out[i]) < real(out[j])
		}
		return imag(out[i]) < imag(out[j])
	})
	return out
}

func assertRoots(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	w, g := sortByReal(want), sortByReal(got)
	for i := range w {
		assert.InDeltaf(t, 0, cmplx.Abs(w[i]-g[i]), tol, "root %d: want %v, got %v", i, w[i], g[i])
	}
}

func TestRoots_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []float64
		want   []complex128
	}{
		{"linear", []float64{2, -4}, []complex128{2}},
		{"quadratic distinct", []float64{1, -3, 2}, []complex128{1, 2}},
		{"quadratic complex pair", []float64{1, 0, 1}, []complex128{complex(0, -1), complex(0, 1)}},
		{"cubic", []float64{1, -6, 11, -6}, []complex128{1, 2, 3}},
		{"non-monic", []float64{2, -2, -4}, []complex128{-1, 2}},
		{"leading zeros stripped", []float64{0, 0, 1, -3, 2}, []complex128{1, 2}},
		{"trailing zeros are zero roots", []float64{1, -1, 0, 0}, []complex128{0, 0, 1}},
		{"constant", []float64{5}, []complex128{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := polyroots.Roots(tc.coeffs)
			require.NoError(t, err)
			assertRoots(t, tc.want, got)
		})
	}
}

func TestRoots_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		coeffs  []float64
		wantErr error
	}{
		{"nil", nil, polyroots.ErrEmptyPolynomial},
		{"all zero", []float64{0, 0, 0}, polyroots.ErrZeroPolynomial},
		{"NaN", []float64{1, math.NaN()}, polyroots.ErrNaNInf},
		{"Inf", []float64{math.Inf(-1), 1}, polyroots.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := polyroots.Roots(tc.coeffs)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestRoots_Residual substitutes every root back into the polynomial.
func TestRoots_Residual(t *testing.T) {
	t.Parallel()

	coeffs := []float64{1, 0.3, -2.5, 0.7, 1.1, -0.2}
	roots, err := polyroots.Roots(coeffs)
	require.NoError(t, err)
	require.Len(t, roots, 5)

	for _, r := range roots {
		var acc complex128
		for _, c := range coeffs {
			acc = acc*r + complex(c, 0)
		}
		assert.Lessf(t, cmplx.Abs(acc), 1e-8, "p(%v) = %v", r, acc)
	}
}

func TestFinderFunc(t *testing.T) {
	t.Parallel()

	var called bool
	f := polyroots.FinderFunc(func(c []float64) ([]complex128, error) {
		called = true
		return []complex128{1}, nil
	})
	got, err := f.Roots([]float64{1, -1})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []complex128{1}, got)

	got, err = polyroots.Companion.Roots([]float64{1, -1})
	require.NoError(t, err)
	assertRoots(t, []complex128{1}, got)
}

func TestPolyval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, polyroots.Polyval(nil, 3))
	assert.Equal(t, 0.0, polyroots.Polyval([]float64{1, -3, 2}, 2))
	assert.Equal(t, 6.0, polyroots.Polyval([]float64{1, -3, 2}, 4))
	assert.Equal(t, 30.0, polyroots.PolyvalAbs([]float64{1, -3, 2}, -4))
}
