// SPDX-License-Identifier: MIT

package polyroots

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "polyroots: ". Callers match with errors.Is.
var (
	// ErrEmptyPolynomial is returned when no coefficients were supplied.
	ErrEmptyPolynomial = errors.New("polyroots: empty coefficient list")

	// ErrZeroPolynomial is returned when every coefficient is zero; such a
	// polynomial has no well-defined root set.
	ErrZeroPolynomial = errors.New("polyroots: all coefficients are zero")

	// ErrNaNInf signals a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("polyroots: NaN or Inf coefficient")

	// ErrNoConvergence indicates that the eigenvalue solver failed on the
	// companion matrix.
	ErrNoConvergence = errors.New("polyroots: eigen decomposition did not converge")
)

// Operation tags used in error wrapping.
const (
	opRoots = "Roots"
)

// rootsErrorf wraps err with an operation tag, preserving it for errors.Is.
// err must be non-nil.
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
