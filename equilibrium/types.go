// SPDX-License-Identifier: MIT

package equilibrium

import "math"

// System describes an acid solution.
//
// Fields:
//   - Ca         : total acid concentration in mol/dm³ (≥ 0).
//   - PKas       : stepwise pKa values, strictly increasing (n ≥ 1).
//   - Counterion : added strong-base equivalents in mol/dm³ (≥ 0).
//     Zero means no titrant.
type System struct {
	Ca         float64
	PKas       []float64
	Counterion float64
}

// Protons returns n, the number of dissociable protons.
func (s System) Protons() int { return len(s.PKas) }

// WithCounterion returns a copy of s with the counterion concentration
// replaced. PKas are shared, not copied.
func (s System) WithCounterion(c float64) System {
	s.Counterion = c
	return s
}

// Outcome tags the three possible results of FindPH.
type Outcome int

const (
	// NotFound: no root passed the physical filters.
	NotFound Outcome = iota

	// Unique: exactly one physical root.
	Unique

	// Ambiguous: more than one physical root; every candidate is reported.
	Ambiguous
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not-found"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of FindPH.
//
// PH is empty for NotFound, has one element for Unique, and holds every
// accepted pH in root-finder order for Ambiguous.
type Result struct {
	Outcome Outcome
	PH      []float64
}

// Value returns the pH and true only when the result is Unique.
func (r Result) Value() (float64, bool) {
	if r.Outcome != Unique || len(r.PH) != 1 {
		return 0, false
	}
	return r.PH[0], true
}

// OrNaN returns the unique pH, or NaN for NotFound and Ambiguous results.
// Plotting code uses it to leave gaps instead of inventing a value.
func (r Result) OrNaN() float64 {
	if v, ok := r.Value(); ok {
		return v
	}
	return math.NaN()
}
