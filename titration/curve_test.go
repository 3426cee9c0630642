// SPDX-License-Identifier: MIT

package titration_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/acidbase/equilibrium"
	"github.com/katalvlaran/acidbase/titration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurve_AceticAcid solves the default 1e-4 mol acetic acid titration
// with 0.004 M base: equivalence at 25 mL, pH ≈ 7.84 there.
func TestCurve_AceticAcid(t *testing.T) {
	t.Parallel()

	s := titration.DefaultSetup()
	s.Points = 201

	res, err := titration.Curve(context.Background(), s, titration.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, res.Volumes, 201)
	require.Len(t, res.Points, 201)
	require.Len(t, res.PH, 201)

	assert.InDelta(t, 25.0, res.EquivalenceVolume, 1e-12)
	assert.True(t, res.EquivalenceInRange)
	assert.InDelta(t, 7.836, res.EquivalencePH, 0.01)

	assert.InDelta(t, 3.909, res.PH[0], 0.01, "initial pH of 1e-3 M acetic acid")
	assert.InDelta(t, 10.824, res.PH[200], 0.01, "pH with 25 mL excess base")
	for i := 1; i < len(res.PH); i++ {
		assert.Greater(t, res.PH[i], res.PH[i-1], "sample %d", i)
	}

	// Dilution: ca falls as titrant is added.
	assert.InDelta(t, 1e-3, res.Points[0].Ca, 1e-15)
	assert.InDelta(t, 1e-4/0.15, res.Points[200].Ca, 1e-15)
}

func TestCurve_InvalidSetup(t *testing.T) {
	t.Parallel()

	s := titration.DefaultSetup()
	s.C = 0
	_, err := titration.Curve(context.Background(), s)
	require.ErrorIs(t, err, titration.ErrInvalidSetup)

	s = titration.DefaultSetup()
	s.PKas = []float64{9, 4}
	_, err = titration.Curve(context.Background(), s)
	require.ErrorIs(t, err, titration.ErrInvalidSetup)
	require.ErrorIs(t, err, equilibrium.ErrPKaOrder)
}

func TestInterpolateAt(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2, 3}
	ys := []float64{10, 20, 40, 80}

	tests := []struct {
		name    string
		x       float64
		want    float64
		inRange bool
	}{
		{"on a sample", 1, 20, true},
		{"nearest below", 1.2, 24, true},
		{"nearest above", 1.8, 36, true},
		{"past the end", 3.2, 180, false},
		{"last sample", 3, 180, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := titration.InterpolateAt(tc.x, xs, ys)
			assert.Equal(t, tc.inRange, ok)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	got, ok := titration.InterpolateAt(1, nil, nil)
	assert.False(t, ok)
	assert.True(t, math.IsNaN(got))
}

func TestLoadSetup(t *testing.T) {
	t.Parallel()

	s, err := titration.LoadSetup(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, titration.DefaultSetup(), s)

	s, err = titration.LoadSetup(strings.NewReader("pKas: [2.15, 7.20]\nna: 0.0002\npoints: 50\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.15, 7.20}, s.PKas)
	assert.Equal(t, 0.0002, s.Na)
	assert.Equal(t, 50, s.Points)
	assert.Equal(t, titration.DefaultVi, s.Vi, "unset fields keep defaults")
	assert.InDelta(t, 50.0, s.EquivalenceVolume(), 1e-12)

	_, err = titration.LoadSetup(strings.NewReader("volume: 3\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = titration.LoadSetup(strings.NewReader("vi: -1\n"))
	require.ErrorIs(t, err, titration.ErrInvalidSetup)
}
