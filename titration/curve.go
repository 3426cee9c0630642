// SPDX-License-Identifier: MIT

package titration

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/acidbase/equilibrium"
)

// outOfRangeOffset is added to the last pH when the equivalence volume lies
// beyond the sampled range, so the marker lands off the chart.
const outOfRangeOffset = 100.0

// CurveResult is a solved titration curve.
type CurveResult struct {
	Volumes []float64 // titrant volumes, mL
	Points  []Point   // solved samples, aligned with Volumes
	PH      []float64 // unique pH per sample, NaN where unresolved

	EquivalenceVolume  float64 // mL
	EquivalencePH      float64 // interpolated pH at EquivalenceVolume
	EquivalenceInRange bool    // false when EquivalenceVolume ≥ the last bracketing sample
}

// Curve solves the titration described by s.
//
// Implementation:
//   - Stage 1: validate s.
//   - Stage 2: sample V = linspace(0, vmax, points) mL and build
//     ca = na/(vi+V), cb = c·V/(vi+V) with volumes in dm³.
//   - Stage 3: solve every sample concurrently.
//   - Stage 4: interpolate the pH at the equivalence volume.
func Curve(ctx context.Context, s Setup, opts ...Option) (*CurveResult, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("Curve: %w", err)
	}

	vi := s.Vi / 1000
	volumes := Linspace(0, s.Vmax, s.Points)
	systems := make([]equilibrium.System, len(volumes))
	for i, v := range volumes {
		total := vi + v/1000
		systems[i] = equilibrium.System{
			Ca:         s.Na / total,
			PKas:       s.PKas,
			Counterion: s.C * (v / 1000) / total,
		}
	}

	points, err := evaluate(ctx, systems, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("Curve: %w", err)
	}

	res := &CurveResult{
		Volumes:           volumes,
		Points:            points,
		PH:                PH(points),
		EquivalenceVolume: s.EquivalenceVolume(),
	}
	res.EquivalencePH, res.EquivalenceInRange = InterpolateAt(res.EquivalenceVolume, volumes, res.PH)

	return res, nil
}

// InterpolateAt linearly interpolates y at x from samples (xs, ys), xs
// ascending. It picks the sample nearest to x and its neighbour on the
// side of x. When that neighbour does not exist it returns
// ys[last] + 100 and false.
func InterpolateAt(x float64, xs, ys []float64) (float64, bool) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return math.NaN(), false
	}

	idx := 0
	for i := range xs {
		if math.Abs(xs[i]-x) < math.Abs(xs[idx]-x) {
			idx = i
		}
	}
	lo, hi := idx, idx+1
	if xs[idx] > x {
		lo, hi = idx-1, idx
	}
	if hi >= len(xs) {
		return ys[len(ys)-1] + outOfRangeOffset, false
	}
	if lo < 0 {
		return ys[0], false
	}

	slope := (ys[hi] - ys[lo]) / (xs[hi] - xs[lo])
	return slope*(x-xs[lo]) + ys[lo], true
}
