// SPDX-License-Identifier: MIT

package equilibrium_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/acidbase/equilibrium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildEquation_Length verifies n+3 coefficients for n pKas and a
// leading coefficient of exactly 1.
func TestBuildEquation_Length(t *testing.T) {
	t.Parallel()

	pKaSets := [][]float64{
		{4.76},
		{2.15, 7.20},
		{2.15, 7.20, 12.35},
		{-3, 1, 5, 9.5},
	}
	for _, pKas := range pKaSets {
		p, err := equilibrium.BuildEquation(equilibrium.System{Ca: 0.01, PKas: pKas, Counterion: 0.005})
		require.NoError(t, err)
		assert.Len(t, p, len(pKas)+3, "pKas=%v", pKas)
		assert.Equal(t, 1.0, p[0], "leading coefficient")
	}
}

// TestBuildEquation_Monoprotic checks every coefficient of
// H³ + (K+c)H² + (cK − caK − Kw)H − KwK against the closed form.
func TestBuildEquation_Monoprotic(t *testing.T) {
	t.Parallel()

	const (
		ca = 0.001
		c  = 0.0004
	)
	K := math.Pow(10, -4.76)
	p, err := equilibrium.BuildEquation(equilibrium.System{Ca: ca, PKas: []float64{4.76}, Counterion: c})
	require.NoError(t, err)

	want := []float64{1, K + c, c*K - ca*K - equilibrium.Kw, -equilibrium.Kw * K}
	assert.InEpsilonSlice(t, want, p, 1e-12)
}

// TestBuildEquation_Diprotic checks the degree-4 polynomial without titrant.
func TestBuildEquation_Diprotic(t *testing.T) {
	t.Parallel()

	const ca = 0.01
	K1 := math.Pow(10, -2.0)
	K12 := math.Pow(10, -(2.0 + 6.0))
	Kw := equilibrium.Kw

	p, err := equilibrium.BuildEquation(equilibrium.System{Ca: ca, PKas: []float64{2, 6}})
	require.NoError(t, err)

	want := []float64{
		1,
		K1,
		K12 - ca*K1 - Kw,
		-2*ca*K12 - Kw*K1,
		-Kw * K12,
	}
	assert.InEpsilonSlice(t, want, p, 1e-12)
}

func TestBuildEquation_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sys     equilibrium.System
		wantErr error
	}{
		{"negative ca", equilibrium.System{Ca: -1e-3, PKas: []float64{4}}, equilibrium.ErrNegativeConcentration},
		{"negative counterion", equilibrium.System{Ca: 1e-3, PKas: []float64{4}, Counterion: -1e-9}, equilibrium.ErrNegativeCounterion},
		{"no pKa", equilibrium.System{Ca: 1e-3}, equilibrium.ErrNoPKa},
		{"tied pKas", equilibrium.System{Ca: 1e-3, PKas: []float64{4, 4}}, equilibrium.ErrPKaOrder},
		{"decreasing pKas", equilibrium.System{Ca: 1e-3, PKas: []float64{7, 4}}, equilibrium.ErrPKaOrder},
		{"NaN pKa", equilibrium.System{Ca: 1e-3, PKas: []float64{math.NaN()}}, equilibrium.ErrNaNInf},
		{"Inf ca", equilibrium.System{Ca: math.Inf(1), PKas: []float64{4}}, equilibrium.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := equilibrium.BuildEquation(tc.sys)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, p, "no partial result on invalid input")

			_, err = equilibrium.FindPH(tc.sys)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestBuildEquation_ZeroConcentration accepts ca = 0 (pure water).
func TestBuildEquation_ZeroConcentration(t *testing.T) {
	t.Parallel()

	res, err := equilibrium.FindPH(equilibrium.System{Ca: 0, PKas: []float64{4.76}})
	require.NoError(t, err)
	pH, ok := res.Value()
	require.True(t, ok, "outcome=%s", res.Outcome)
	assert.InDelta(t, 7.0, pH, 1e-6)
}

func TestResidual(t *testing.T) {
	t.Parallel()

	// (H − 1e-3)(H + 1e-2) = H² + 9e-3·H − 1e-5
	coeffs := []float64{1, 9e-3, -1e-5}
	assert.InDelta(t, 0, equilibrium.Residual(coeffs, 3), 1e-12)
	assert.Greater(t, equilibrium.Residual(coeffs, 4), 0.1)
	assert.Equal(t, 0.0, equilibrium.Residual([]float64{0, 0}, 7))
}
