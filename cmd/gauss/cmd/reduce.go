// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/spf13/cobra"
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce a matrix read from a YAML document",
	Long: `Reads a YAML document of the form

  rows:
    - [0, 2, 2]
    - [2, 3, 4]
    - [1/2, 1/2, 1/2]

from --file (or stdin when --file is "-" or empty), reduces it and prints
the result as text or YAML.`,
	Args: cobra.NoArgs,
	RunE: runReduce,
}

var (
	reduceFile   string
	reduceFormat string
)

func init() {
	f := reduceCmd.Flags()
	f.StringVarP(&reduceFile, "file", "f", "", `Input YAML file ("-" or empty for stdin)`)
	f.StringVar(&reduceFormat, "format", formatText, "Output format: text or yaml")
}

func runReduce(cmd *cobra.Command, args []string) error {
	if reduceFormat != formatText && reduceFormat != formatYAML {
		return fmt.Errorf("unknown --format %q (want %s or %s)", reduceFormat, formatText, formatYAML)
	}

	var in io.Reader = cmd.InOrStdin()
	if reduceFile != "" && reduceFile != "-" {
		fh, err := os.Open(reduceFile)
		if err != nil {
			return err
		}
		defer fh.Close()
		in = fh
	}

	m, err := readMatrix(in)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Info("reducing", "height", m.Height(), "length", m.Length())
	if err = matrix.GaussianElimination(m, matrix.WithLogger(logger)); err != nil {
		return err
	}

	if reduceFormat == formatYAML {
		return writeYAML(cmd.OutOrStdout(), m)
	}
	writeText(cmd.OutOrStdout(), m)

	return nil
}
