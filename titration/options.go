// SPDX-License-Identifier: MIT

package titration

import (
	"runtime"

	"github.com/katalvlaran/acidbase/equilibrium"
)

const panicWorkersInvalid = "titration: WithWorkers: workers must be positive"

// Option configures sweeps and curves.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	workers int                  // concurrent FindPH calls; default GOMAXPROCS
	solver  []equilibrium.Option // forwarded to every FindPH call
}

// DefaultOptions uses one worker per available CPU and default solver options.
func DefaultOptions() Options {
	return Options{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of concurrent solver calls. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithSolverOptions forwards opts to every equilibrium.FindPH call.
func WithSolverOptions(opts ...equilibrium.Option) Option {
	return func(o *Options) { o.solver = append(o.solver, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
