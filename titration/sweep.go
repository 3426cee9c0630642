// SPDX-License-Identifier: MIT

package titration

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/acidbase/equilibrium"
)

// Point is one solved sample.
type Point struct {
	Ca         float64            // total acid concentration (mol/dm³)
	Counterion float64            // strong-base counterion concentration (mol/dm³)
	Result     equilibrium.Result // tagged pH outcome
}

// Linspace returns n evenly spaced samples from lo to hi inclusive.
// n == 1 yields [lo]; n < 1 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Sweep solves sys once per counterion concentration, preserving order.
// The base system is validated before any work starts; a negative
// counterion aborts the sweep with equilibrium.ErrNegativeCounterion.
func Sweep(ctx context.Context, sys equilibrium.System, counterions []float64, opts ...Option) ([]Point, error) {
	if err := sys.WithCounterion(0).Validate(); err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	systems := make([]equilibrium.System, len(counterions))
	for i, c := range counterions {
		systems[i] = sys.WithCounterion(c)
	}
	points, err := evaluate(ctx, systems, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	return points, nil
}

// CounterionSweep sweeps the counterion from 0 to twice the stoichiometric
// equivalence (2·n·ca) in points steps.
func CounterionSweep(ctx context.Context, sys equilibrium.System, points int, opts ...Option) ([]Point, error) {
	if points < 2 {
		return nil, fmt.Errorf("CounterionSweep: %w", ErrTooFewPoints)
	}
	hi := 2 * float64(sys.Protons()) * sys.Ca
	return Sweep(ctx, sys, Linspace(0, hi, points), opts...)
}

// PH extracts the unique pH of every point, NaN where there is none.
func PH(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Result.OrNaN()
	}
	return out
}

// evaluate runs FindPH for each system on at most o.workers goroutines.
// The first error cancels the remaining work.
func evaluate(ctx context.Context, systems []equilibrium.System, o Options) ([]Point, error) {
	out := make([]Point, len(systems))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range systems {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := equilibrium.FindPH(systems[i], o.solver...)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			out[i] = Point{Ca: systems[i].Ca, Counterion: systems[i].Counterion, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
