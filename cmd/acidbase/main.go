// SPDX-License-Identifier: MIT

// Command acidbase solves acid–base equilibria from the command line.
//
//	acidbase ph 0.001 7              # weak acid
//	acidbase ph -- 0.001 "-2, 1.99"  # diprotic; "--" lets pKas start with "-"
//	acidbase ph 0.01 4.76 --cation 0.005
//	acidbase species --pka 2.15,7.20,12.35
//	acidbase beta --ca 0.02 --pka 4
//	acidbase titrate --setup setup.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
