// SPDX-License-Identifier: MIT

// gauss reduces matrices of exact rationals to reduced row-echelon form.
package main

import (
	"os"

	"github.com/katalvlaran/lvgauss/cmd/gauss/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
