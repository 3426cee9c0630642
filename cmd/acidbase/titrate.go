// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acidbase/equilibrium"
	"github.com/katalvlaran/acidbase/titration"
)

func newTitrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titrate",
		Short: "Titration curve of an acid with a strong base",
		Long: `Titrates na mol of acid in vi mL with base of concentration c up to vmax mL.
Values come from --setup (YAML), or from setup keys at the top level of the
--config file when no --setup is given, then titrate.* config/environment
keys and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTitrate(cmd)
		},
	}
	def := titration.DefaultSetup()
	cmd.Flags().String("setup", "", "Titration setup file (YAML)")
	cmd.Flags().StringSlice("pka", []string{"4.76"}, "Acid pKas")
	cmd.Flags().Float64("na", def.Na, "Acid amount, mol")
	cmd.Flags().Float64("vi", def.Vi, "Initial volume, mL")
	cmd.Flags().Float64("c", def.C, "Titrant concentration, mol/dm³")
	cmd.Flags().Float64("vmax", def.Vmax, "Final titrant volume, mL")
	cmd.Flags().Int("points", def.Points, "Titrant volumes sampled")
	cmd.Flags().Int("every", 100, "Print every n-th sample in the table (0 disables the table)")
	cmd.Flags().Bool("no-plot", false, "Skip the chart")
	cmd.Flags().Int("workers", 0, "Concurrent solver calls (0 = number of CPUs)")
	a.bindFlags(cmd, "titrate")
	return cmd
}

// setup resolves the titration setup: the --setup file, else top-level
// setup keys of the app config, then explicitly set titrate.* keys on top.
func (a *app) setup() (titration.Setup, error) {
	s := titration.DefaultSetup()
	if path := a.v.GetString("titrate.setup"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return s, err
		}
		defer f.Close()
		if s, err = titration.LoadSetup(f); err != nil {
			return s, err
		}
	} else if err := a.setupFromConfig(&s); err != nil {
		return s, err
	}
	if a.v.IsSet("titrate.pka") {
		pKas, err := parseFloats(a.v.GetStringSlice("titrate.pka"))
		if err != nil {
			return s, fmt.Errorf("pKas: %w", err)
		}
		s.PKas = pKas
	}
	if a.v.IsSet("titrate.na") {
		s.Na = a.v.GetFloat64("titrate.na")
	}
	if a.v.IsSet("titrate.vi") {
		s.Vi = a.v.GetFloat64("titrate.vi")
	}
	if a.v.IsSet("titrate.c") {
		s.C = a.v.GetFloat64("titrate.c")
	}
	if a.v.IsSet("titrate.vmax") {
		s.Vmax = a.v.GetFloat64("titrate.vmax")
	}
	if a.v.IsSet("titrate.points") {
		s.Points = a.v.GetInt("titrate.points")
	}
	return s, s.Validate()
}

// setupFromConfig applies Setup keys found at the top level of the config
// file, so a setup file passed as --config is not silently ignored.
func (a *app) setupFromConfig(s *titration.Setup) error {
	if a.v.InConfig("pkas") {
		pKas, err := parseFloats(a.v.GetStringSlice("pkas"))
		if err != nil {
			return fmt.Errorf("config pKas: %w", err)
		}
		s.PKas = pKas
	}
	if a.v.InConfig("na") {
		s.Na = a.v.GetFloat64("na")
	}
	if a.v.InConfig("vi") {
		s.Vi = a.v.GetFloat64("vi")
	}
	if a.v.InConfig("c") {
		s.C = a.v.GetFloat64("c")
	}
	if a.v.InConfig("vmax") {
		s.Vmax = a.v.GetFloat64("vmax")
	}
	if a.v.InConfig("points") {
		s.Points = a.v.GetInt("points")
	}
	return nil
}

func (a *app) runTitrate(cmd *cobra.Command) error {
	s, err := a.setup()
	if err != nil {
		return err
	}

	opts := []titration.Option{titration.WithSolverOptions(equilibrium.WithLogger(a.log))}
	if n := a.v.GetInt("titrate.workers"); n > 0 {
		opts = append(opts, titration.WithWorkers(n))
	}
	res, err := titration.Curve(cmd.Context(), s, opts...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Acid: %.3e mol, pKa(s) %v, in %g mL\n", s.Na, s.PKas, s.Vi)
	fmt.Fprintf(w, "Titrant: %g M, up to %g mL\n", s.C, s.Vmax)
	if res.EquivalenceInRange {
		fmt.Fprintf(w, "Equivalence: %.2f mL at pH %.2f\n", res.EquivalenceVolume, res.EquivalencePH)
	} else {
		fmt.Fprintf(w, "Equivalence: %.2f mL (beyond %g mL)\n", res.EquivalenceVolume, s.Vmax)
	}

	if every := a.v.GetInt("titrate.every"); every > 0 {
		fmt.Fprintln(w, "  V/mL     pH")
		for i := 0; i < len(res.Volumes); i += every {
			fmt.Fprintf(w, "%6.2f  %5.2f\n", res.Volumes[i], res.PH[i])
		}
	}

	if a.v.GetBool("titrate.no-plot") {
		return nil
	}
	c := chart{Width: 72, Height: 16, Caption: fmt.Sprintf("pH vs titrant volume, 0 to %g mL", s.Vmax), Lower: 0, Upper: 14}
	return c.render(w, res.PH)
}
