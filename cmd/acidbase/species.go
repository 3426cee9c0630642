// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acidbase/speciation"
	"github.com/katalvlaran/acidbase/titration"
)

func newSpeciesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "Tabulate species percentages against pH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSpecies(cmd)
		},
	}
	cmd.Flags().StringSlice("pka", []string{"2"}, "pKa values in increasing order (repeat or comma-separate)")
	cmd.Flags().Float64("from", 0, "Lowest pH")
	cmd.Flags().Float64("to", 14, "Highest pH")
	cmd.Flags().Int("points", 15, "Number of pH samples")
	a.bindFlags(cmd, "species")
	return cmd
}

func (a *app) runSpecies(cmd *cobra.Command) error {
	pKas, err := parseFloats(a.v.GetStringSlice("species.pka"))
	if err != nil {
		return fmt.Errorf("pKas: %w", err)
	}
	pH := titration.Linspace(a.v.GetFloat64("species.from"), a.v.GetFloat64("species.to"), a.v.GetInt("species.points"))
	table, err := speciation.Fractions(pH, pKas)
	if err != nil {
		return err
	}
	pct := speciation.Percent(table)
	dominant := speciation.Dominant(table)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"pH"}
	for j := range pct {
		header = append(header, speciesName(len(pKas), j))
	}
	header = append(header, "dominant")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
	for k, x := range pH {
		row := []string{fmt.Sprintf("%.2f", x)}
		for j := range pct {
			row = append(row, fmt.Sprintf("%.1f%%", pct[j][k]))
		}
		row = append(row, speciesName(len(pKas), dominant[k]))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	return tw.Flush()
}

// speciesName labels species j of an n-protic acid, e.g. H2A-, A3-.
func speciesName(n, j int) string {
	var b strings.Builder
	switch h := n - j; {
	case h == 1:
		b.WriteString("H")
	case h > 1:
		fmt.Fprintf(&b, "H%d", h)
	}
	b.WriteString("A")
	switch {
	case j == 1:
		b.WriteString("-")
	case j > 1:
		fmt.Fprintf(&b, "%d-", j)
	}
	return b.String()
}
