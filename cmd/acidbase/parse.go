// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFloats parses each argument as one or more floats separated by
// commas or whitespace, so "2.15,7.2" and "-2, 1.99" both work.
func parseFloats(args []string) ([]float64, error) {
	var out []float64
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", f, err)
			}
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values given")
	}
	return out, nil
}
