// SPDX-License-Identifier: MIT

package equilibrium

// Water autoionization at standard conditions.
const (
	// PKw is −log10(Kw).
	PKw = 14.0

	// Kw is the ionic product of water.
	Kw = 1.0e-14
)

// Root filtering thresholds. These encode physical bounds on [H+].
const (
	// Epsilon is the absolute slack on the [H+] bounds and the relative
	// tolerance on a root's imaginary part.
	Epsilon = 1.0e-8

	// CounterionFloor keeps Kw/counterion finite when no titrant is present.
	CounterionFloor = 1.0e-16
)
