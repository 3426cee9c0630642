// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acidbase/equilibrium"
	"github.com/katalvlaran/acidbase/titration"
)

func newPHCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ph CA PKA [PKA...]",
		Short: "Solve the pH of an acid solution",
		Long: `Solves the charge balance for an acid of total concentration CA (mol/dm³)
with the given pKas, optionally with a strong-base counterion, then plots pH
against counterion concentration from 0 to twice the equivalence.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPH(cmd, args)
		},
	}
	cmd.Flags().Float64("cation", 0, "Counterion (strong base) concentration, mol/dm³")
	cmd.Flags().Int("points", 500, "Samples in the counterion sweep")
	cmd.Flags().Bool("no-plot", false, "Skip the counterion sweep chart")
	cmd.Flags().Int("width", 72, "Chart width in columns")
	cmd.Flags().Int("height", 16, "Chart height in rows")
	a.bindFlags(cmd, "ph")
	return cmd
}

func (a *app) runPH(cmd *cobra.Command, args []string) error {
	ca, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid acid concentration %q: %w", args[0], err)
	}
	pKas, err := parseFloats(args[1:])
	if err != nil {
		return fmt.Errorf("pKas: %w", err)
	}
	sys := equilibrium.System{Ca: ca, PKas: pKas, Counterion: a.v.GetFloat64("ph.cation")}

	res, err := equilibrium.FindPH(sys, equilibrium.WithLogger(a.log))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  Acid concentration: %.3e M\n", sys.Ca)
	fmt.Fprintf(w, "         Acid pKa(s): %v\n", sys.PKas)
	fmt.Fprintf(w, "Cation concentration: %v\n", sys.Counterion)
	writeResult(w, res)

	if a.v.GetBool("ph.no-plot") {
		return nil
	}
	points, err := titration.CounterionSweep(cmd.Context(), sys, a.v.GetInt("ph.points"),
		titration.WithSolverOptions(equilibrium.WithLogger(a.log.V(1))))
	if err != nil {
		return err
	}
	c := chart{
		Width:   a.v.GetInt("ph.width"),
		Height:  a.v.GetInt("ph.height"),
		Caption: fmt.Sprintf("pH vs counterion, 0 to %.3e M", 2*float64(sys.Protons())*sys.Ca),
		Lower:   0,
		Upper:   14,
	}
	return c.render(w, titration.PH(points))
}

// writeResult prints the solution line for each outcome.
func writeResult(w io.Writer, res equilibrium.Result) {
	switch res.Outcome {
	case equilibrium.Unique:
		fmt.Fprintf(w, "         Solution pH: %.2f\n", res.PH[0])
	case equilibrium.Ambiguous:
		fmt.Fprintf(w, "         Solution pH: ambiguous %.2f\n", res.PH)
	default:
		fmt.Fprintln(w, "         Solution pH: no solution found")
	}
}
