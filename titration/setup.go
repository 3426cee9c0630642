// SPDX-License-Identifier: MIT

package titration

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/acidbase/equilibrium"
)

// Defaults of a classroom acetic acid titration.
const (
	DefaultNa     = 0.0001 // mol
	DefaultVi     = 100.0  // mL
	DefaultC      = 0.004  // mol/dm³
	DefaultVmax   = 50.0   // mL
	DefaultPoints = 1000
)

// DefaultPKa is acetic acid.
const DefaultPKa = 4.76

// Setup describes a volumetric titration of an acid with a strong base.
type Setup struct {
	PKas   []float64 `yaml:"pKas" json:"pKas"`
	Na     float64   `yaml:"na" json:"na"`         // moles of acid
	Vi     float64   `yaml:"vi" json:"vi"`         // initial volume, mL
	C      float64   `yaml:"c" json:"c"`           // titrant concentration, mol/dm³
	Vmax   float64   `yaml:"vmax" json:"vmax"`     // final titrant volume, mL
	Points int       `yaml:"points" json:"points"` // number of titrant volumes sampled
}

// DefaultSetup returns the acetic acid defaults.
func DefaultSetup() Setup {
	return Setup{
		PKas:   []float64{DefaultPKa},
		Na:     DefaultNa,
		Vi:     DefaultVi,
		C:      DefaultC,
		Vmax:   DefaultVmax,
		Points: DefaultPoints,
	}
}

// Validate checks the setup: pKas as in equilibrium.System, na ≥ 0,
// vi > 0, c > 0, vmax > 0, points ≥ 2.
func (s Setup) Validate() error {
	if err := (equilibrium.System{Ca: s.Na, PKas: s.PKas}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	switch {
	case s.Vi <= 0:
		return fmt.Errorf("%w: vi must be positive, got %g", ErrInvalidSetup, s.Vi)
	case s.C <= 0:
		return fmt.Errorf("%w: c must be positive, got %g", ErrInvalidSetup, s.C)
	case s.Vmax <= 0:
		return fmt.Errorf("%w: vmax must be positive, got %g", ErrInvalidSetup, s.Vmax)
	case s.Points < 2:
		return fmt.Errorf("%w: %w", ErrInvalidSetup, ErrTooFewPoints)
	}
	return nil
}

// EquivalenceVolume is the titrant volume (mL) that neutralises one proton
// equivalent of the acid.
func (s Setup) EquivalenceVolume() float64 { return 1000 * s.Na / s.C }

// LoadSetup decodes a YAML setup from r over DefaultSetup and validates it.
// Unknown keys are rejected. An empty document yields the defaults.
func LoadSetup(r io.Reader) (Setup, error) {
	s := DefaultSetup()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Setup{}, fmt.Errorf("LoadSetup: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Setup{}, fmt.Errorf("LoadSetup: %w", err)
	}
	return s, nil
}
