// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acidbase/buffer"
	"github.com/katalvlaran/acidbase/titration"
)

func newBetaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beta",
		Short: "Buffer capacity of a monoprotic weak acid against pH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBeta(cmd)
		},
	}
	cmd.Flags().Float64("ca", 0.02, "Total acid concentration, mol/dm³")
	cmd.Flags().Float64("pka", 4.0, "Acid pKa")
	cmd.Flags().Float64("from", 1.5, "Lowest pH")
	cmd.Flags().Float64("to", 12.5, "Highest pH")
	cmd.Flags().Int("points", 12, "Number of pH samples in the table")
	cmd.Flags().Bool("plot", false, "Also draw β(pH) as a chart (500 samples)")
	a.bindFlags(cmd, "beta")
	return cmd
}

func (a *app) runBeta(cmd *cobra.Command) error {
	ca, pKa := a.v.GetFloat64("beta.ca"), a.v.GetFloat64("beta.pka")
	if ca < 0 {
		return fmt.Errorf("acid concentration must be non-negative, got %g", ca)
	}
	lo, hi := a.v.GetFloat64("beta.from"), a.v.GetFloat64("beta.to")

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ca = %.3e M, pKa = %.2f\n", ca, pKa)
	fmt.Fprintln(w, "    pH        beta")
	pH := titration.Linspace(lo, hi, a.v.GetInt("beta.points"))
	for i, b := range buffer.Beta(pH, ca, pKa) {
		fmt.Fprintf(w, "%6.2f  %10.4e\n", pH[i], b)
	}

	fine := titration.Linspace(lo, hi, 500)
	if at, peak, ok := buffer.Max(fine, ca, pKa); ok {
		fmt.Fprintf(w, "Max beta: %.4e at pH %.2f\n", peak, at)
	}

	if !a.v.GetBool("beta.plot") {
		return nil
	}
	c := chart{Width: 72, Height: 16, Caption: fmt.Sprintf("buffer capacity, pH %.1f to %.1f", lo, hi)}
	return c.render(w, buffer.Beta(fine, ca, pKa))
}
