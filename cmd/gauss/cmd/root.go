// SPDX-License-Identifier: MIT

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "gauss",
	Short:         "Exact Gauss–Jordan elimination over the rationals",
	Long:          "Reduce matrices of exact fractions to reduced row-echelon form and do rational arithmetic without rounding.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// traceFlag enables the debug-level elimination trace on stderr.
var traceFlag bool

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Log every row operation to stderr")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(reduceCmd)
	rootCmd.AddCommand(rationalCmd)
}

// newLogger returns a text logger on the command's stderr.
// Level is debug with --trace, warn otherwise.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if traceFlag {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
