// SPDX-License-Identifier: MIT

package equilibrium

import (
	"errors"
	"fmt"
)

// Sentinel errors. Input validation errors are returned before any numeric
// work; callers match them with errors.Is.
var (
	// ErrNegativeConcentration is returned when the total acid
	// concentration is below zero.
	ErrNegativeConcentration = errors.New("equilibrium: acid concentration must be non-negative")

	// ErrNegativeCounterion is returned when the counterion concentration
	// is below zero.
	ErrNegativeCounterion = errors.New("equilibrium: counterion concentration must be non-negative")

	// ErrNoPKa is returned when no pKa values are supplied.
	ErrNoPKa = errors.New("equilibrium: at least one pKa is required")

	// ErrPKaOrder is returned when pKas are not strictly increasing.
	ErrPKaOrder = errors.New("equilibrium: pKas must be strictly increasing")

	// ErrNaNInf signals a NaN or ±Inf input value.
	ErrNaNInf = errors.New("equilibrium: NaN or Inf encountered")

	// ErrRootFinding wraps a failure of the polynomial root finder.
	ErrRootFinding = errors.New("equilibrium: root finding failed")
)

// Operation tags for error wrapping.
const (
	opBuildEquation = "BuildEquation"
	opFindPH        = "FindPH"
	opValidate      = "Validate"
)

// equilibriumErrorf wraps err with an operation tag. err must be non-nil.
func equilibriumErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
