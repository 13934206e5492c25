// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/lvgauss/field"
	"github.com/spf13/cobra"
)

var rationalCmd = &cobra.Command{
	Use:   "rational <a> <op> <b>",
	Short: "Exact arithmetic on two rationals (op is one of + - * /)",
	Example: `  gauss rational 1/3 + 1/3
  gauss rational 1/2 / 1/2`,
	Args: cobra.ExactArgs(3),
	RunE: runRational,
}

func runRational(cmd *cobra.Command, args []string) error {
	a, err := field.ParseRational(args[0])
	if err != nil {
		return err
	}
	b, err := field.ParseRational(args[2])
	if err != nil {
		return err
	}

	var result field.Rational
	switch op := args[1]; op {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "*", "x":
		result = a.Mul(b)
	case "/":
		if result, err = field.Divide(a, b); err != nil {
			return fmt.Errorf("%s / %s: %w", a, b, err)
		}
	default:
		return fmt.Errorf("unknown operator %q (want + - * /)", op)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%.6g)\n", result, result.Float64())

	return nil
}
