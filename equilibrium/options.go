// SPDX-License-Identifier: MIT

package equilibrium

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/acidbase/polyroots"
)

const panicNilFinder = "equilibrium: WithRootFinder: finder must be non-nil"

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the effective solver configuration. Fields are unexported;
// callers configure through Option values.
type Options struct {
	logger logr.Logger      // warning sink; default logr.Discard()
	finder polyroots.Finder // default polyroots.Companion
}

// DefaultOptions returns the zero-configuration solver options:
// discarded logs and the companion-matrix root finder.
func DefaultOptions() Options {
	return Options{
		logger: logr.Discard(),
		finder: polyroots.Companion,
	}
}

// WithLogger routes the "no solution" and "multiple solutions" warnings to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithRootFinder replaces the polynomial root finder.
// Panics if f is nil.
func WithRootFinder(f polyroots.Finder) Option {
	if f == nil {
		panic(panicNilFinder)
	}
	return func(o *Options) { o.finder = f }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
