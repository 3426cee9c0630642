// SPDX-License-Identifier: MIT

package speciation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrPKaOrder is returned when pKas decrease. Equal neighbours are allowed.
	ErrPKaOrder = errors.New("speciation: pKas are expected in increasing order")

	// ErrNaNInf signals a NaN or ±Inf pH sample or pKa.
	ErrNaNInf = errors.New("speciation: NaN or Inf encountered")
)

const opFractions = "Fractions"

// Fractions returns an (n+1)×m table: row j holds the fraction of species j
// at each of the m pH samples. With no pKas the single species has
// fraction 1 everywhere.
//
// Errors: ErrNaNInf, ErrPKaOrder.
//
// Complexity: O(n·m) time and memory.
func Fractions(pH []float64, pKas []float64) ([][]float64, error) {
	for _, v := range pH {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: pH: %w", opFractions, ErrNaNInf)
		}
	}
	for i, pKa := range pKas {
		if math.IsNaN(pKa) || math.IsInf(pKa, 0) {
			return nil, fmt.Errorf("%s: pKa: %w", opFractions, ErrNaNInf)
		}
		if i > 0 && pKa < pKas[i-1] {
			return nil, fmt.Errorf("%s: %w", opFractions, ErrPKaOrder)
		}
	}

	n, m := len(pKas), len(pH)
	num := make([][]float64, n+1)
	num[0] = make([]float64, m)
	for k := range num[0] {
		num[0][k] = 1
	}
	for i, pKa := range pKas {
		num[i+1] = make([]float64, m)
		for k, x := range pH {
			num[i+1][k] = num[i][k] * math.Pow(10, x-pKa)
		}
	}

	den := make([]float64, m)
	for _, row := range num {
		floats.Add(den, row)
	}
	for _, row := range num {
		floats.Div(row, den)
	}

	return num, nil
}

// Percent returns a copy of table scaled by 100, for display.
func Percent(table [][]float64) [][]float64 {
	out := make([][]float64, len(table))
	for j, row := range table {
		out[j] = floats.ScaleTo(make([]float64, len(row)), 100, row)
	}
	return out
}

// Dominant returns, for each pH sample, the index of the most abundant
// species. Ties resolve to the lower index.
func Dominant(table [][]float64) []int {
	if len(table) == 0 {
		return nil
	}
	out := make([]int, len(table[0]))
	for k := range out {
		best := 0
		for j := 1; j < len(table); j++ {
			if table[j][k] > table[best][k] {
				best = j
			}
		}
		out[k] = best
	}
	return out
}
