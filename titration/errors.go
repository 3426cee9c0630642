// SPDX-License-Identifier: MIT

package titration

import "errors"

var (
	// ErrInvalidSetup is returned when a titration Setup violates its
	// physical constraints (non-positive volumes or concentrations).
	ErrInvalidSetup = errors.New("titration: invalid setup")

	// ErrTooFewPoints is returned when fewer than two samples are requested.
	ErrTooFewPoints = errors.New("titration: at least two sample points are required")
)
