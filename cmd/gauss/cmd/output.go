// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvgauss/field"
	"github.com/katalvlaran/lvgauss/matrix"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// matrixDoc is the YAML input document.
type matrixDoc struct {
	Rows [][]string `yaml:"rows"`
}

// resultDoc is the YAML output document.
type resultDoc struct {
	Rows   [][]string `yaml:"rows"`
	Pivots []int      `yaml:"pivots,flow"`
	Rank   int        `yaml:"rank"`
}

// readMatrix decodes a matrixDoc and parses every cell as a rational.
// Numbers written without quotes (3, -0.5) are read as their literal text.
func readMatrix(r io.Reader) (*matrix.Matrix[field.Rational], error) {
	var doc matrixDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	return parseMatrix(doc.Rows)
}

// writeText prints the matrix followed by rank and pivot columns.
func writeText(w io.Writer, m *matrix.Matrix[field.Rational]) {
	fmt.Fprint(w, m)
	fmt.Fprintf(w, "rank: %d\n", m.Rank())
	fmt.Fprintf(w, "pivot columns: %v\n", m.Pivots())
}

// writeYAML encodes the reduced matrix as a resultDoc.
func writeYAML(w io.Writer, m *matrix.Matrix[field.Rational]) error {
	doc := resultDoc{Pivots: m.Pivots(), Rank: m.Rank()}
	for _, row := range m.Rows() {
		line := make([]string, len(row))
		for j, v := range row {
			line[j] = v.String()
		}
		doc.Rows = append(doc.Rows, line)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
