// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/lvgauss/field"
	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Reduce the built-in 3×3 sample matrix",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

// demoRows is the sample: a zero leading entry forces a row exchange.
var demoRows = [][]string{
	{"0", "2", "2"},
	{"2", "3", "4"},
	{"1/2", "1/2", "1/2"},
}

func runDemo(cmd *cobra.Command, args []string) error {
	m, err := parseMatrix(demoRows)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "input:")
	fmt.Fprint(out, m)

	if err = matrix.GaussianElimination(m, matrix.WithLogger(newLogger(cmd))); err != nil {
		return err
	}

	fmt.Fprintln(out, "reduced:")
	writeText(out, m)

	return nil
}

// parseMatrix builds a rational matrix from text cells.
func parseMatrix(cells [][]string) (*matrix.Matrix[field.Rational], error) {
	rows := make([][]field.Rational, len(cells))
	for i, line := range cells {
		rows[i] = make([]field.Rational, len(line))
		for j, cell := range line {
			r, err := field.ParseRational(cell)
			if err != nil {
				return nil, fmt.Errorf("cell [%d,%d]: %w", i, j, err)
			}
			rows[i][j] = r
		}
	}

	return matrix.New(rows)
}
