// SPDX-License-Identifier: MIT

// Package titration drives the pH solver over many related systems:
// strong-base counterion sweeps and volumetric titration curves.
//
// Every sample is an independent equilibrium.FindPH call, so samples are
// evaluated concurrently on a bounded worker pool; output order always
// matches input order. Samples whose pH is NotFound or Ambiguous are kept
// as such in the returned Points, and appear as NaN in the convenience
// PH slices used for plotting.
//
// A volumetric titration is described by a Setup:
//
//	na   : moles of acid in the flask
//	vi   : initial volume (mL)
//	c    : titrant (strong base) concentration (mol/dm³)
//	vmax : largest titrant volume (mL)
//
// At titrant volume V (mL) the flask holds ca = na/(vi+V) and a counterion
// concentration cb = c·V/(vi+V), volumes in dm³. The equivalence volume is
// 1000·na/c mL; its pH is linearly interpolated between the two samples
// that bracket it.
//
// Setups decode from YAML:
//
//	pKas: [4.76]
//	na: 0.0001
//	vi: 100
//	c: 0.004
//	vmax: 50
//	points: 1000
package titration
