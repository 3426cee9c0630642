// SPDX-License-Identifier: MIT

package speciation_test

import (
	"fmt"

	"github.com/katalvlaran/acidbase/speciation"
)

// ExampleFractions prints acetic acid / acetate percentages.
func ExampleFractions() {
	pH := []float64{2.76, 4.76, 6.76}
	table, err := speciation.Fractions(pH, []float64{4.76})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for k, v := range pH {
		fmt.Printf("pH %.2f: HA %5.1f%%  A- %5.1f%%\n", v, 100*table[0][k], 100*table[1][k])
	}
	// Output:
	// pH 2.76: HA  99.0%  A-   1.0%
	// pH 4.76: HA  50.0%  A-  50.0%
	// pH 6.76: HA   1.0%  A-  99.0%
}
