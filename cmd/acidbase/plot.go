// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
)

// chart describes a terminal line chart.
type chart struct {
	Width, Height int
	Caption       string
	Lower, Upper  float64 // y range; ignored when Lower >= Upper
}

// render writes ys as an ASCII chart. NaN samples (unresolved pH) are
// dropped; the caption reports how many.
func (c chart) render(w io.Writer, ys []float64) error {
	series := make([]float64, 0, len(ys))
	for _, y := range ys {
		if !math.IsNaN(y) {
			series = append(series, y)
		}
	}
	if len(series) == 0 {
		_, err := fmt.Fprintln(w, "(nothing to plot)")
		return err
	}

	caption := c.Caption
	if dropped := len(ys) - len(series); dropped > 0 {
		caption = fmt.Sprintf("%s (%d unresolved samples omitted)", caption, dropped)
	}
	opts := []asciigraph.Option{
		asciigraph.Height(c.Height),
		asciigraph.Width(c.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	}
	if c.Lower < c.Upper {
		opts = append(opts, asciigraph.LowerBound(c.Lower), asciigraph.UpperBound(c.Upper))
	}

	_, err := fmt.Fprintln(w, asciigraph.Plot(series, opts...))
	return err
}
