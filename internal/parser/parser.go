// Package parser turns textual puzzle definitions into
// domain.PuzzleDefinition values. Two formats are supported: the solver's
// native plain-text format and a YAML schema.
//
// Plain text:
//
//	9 rows of 9 whitespace-separated integers, 0 for a blank cell, then a
//	line "<numMirror> <numRange>", then one line per mirror line and one
//	per range line listing cells as "row,col" tokens. Mirror lines are
//	ordered; range lines are sets.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"svw.info/renban/internal/domain"
)

// ParseFile reads a definition from path, choosing the format by
// extension: .yaml/.yml parse as YAML, anything else as plain text.
func ParseFile(path string) (*domain.PuzzleDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(strings.NewReader(string(data)))
	}
}

// ParseText reads the plain-text format.
func ParseText(r io.Reader) (*domain.PuzzleDefinition, error) {
	sc := bufio.NewScanner(r)
	def := &domain.PuzzleDefinition{}
	for row := 0; row < 9; row++ {
		fields, err := nextFields(sc)
		if err != nil {
			return nil, fmt.Errorf("grid row %d: %w", row, err)
		}
		if len(fields) != 9 {
			return nil, fmt.Errorf("grid row %d: want 9 values, got %d", row, len(fields))
		}
		for col, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil || n < 0 || n > 9 {
				return nil, fmt.Errorf("grid row %d col %d: bad value %q", row, col, f)
			}
			def.Givens[row][col] = uint8(n)
		}
	}
	counts, err := nextFields(sc)
	if err != nil {
		return nil, fmt.Errorf("line counts: %w", err)
	}
	if len(counts) != 2 {
		return nil, fmt.Errorf("line counts: want 2 numbers, got %d", len(counts))
	}
	numMirror, err := strconv.Atoi(counts[0])
	if err != nil || numMirror < 0 {
		return nil, fmt.Errorf("line counts: bad mirror count %q", counts[0])
	}
	numRange, err := strconv.Atoi(counts[1])
	if err != nil || numRange < 0 {
		return nil, fmt.Errorf("line counts: bad range count %q", counts[1])
	}
	for i := 0; i < numMirror; i++ {
		cells, err := nextCoords(sc)
		if err != nil {
			return nil, fmt.Errorf("mirror line %d: %w", i, err)
		}
		def.Mirrors = append(def.Mirrors, domain.MirrorLine(cells))
	}
	for i := 0; i < numRange; i++ {
		cells, err := nextCoords(sc)
		if err != nil {
			return nil, fmt.Errorf("range line %d: %w", i, err)
		}
		def.Ranges = append(def.Ranges, domain.RangeLine(cells))
	}
	return def, nil
}

func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		if fields := strings.Fields(sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

func nextCoords(sc *bufio.Scanner) ([]domain.CellCoord, error) {
	fields, err := nextFields(sc)
	if err != nil {
		return nil, err
	}
	cells := make([]domain.CellCoord, 0, len(fields))
	for _, f := range fields {
		cc, err := parseCoord(f)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cc)
	}
	return cells, nil
}

func parseCoord(s string) (domain.CellCoord, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return domain.CellCoord{}, fmt.Errorf("bad coordinate %q", s)
	}
	row, err1 := strconv.Atoi(strings.TrimSpace(r))
	col, err2 := strconv.Atoi(strings.TrimSpace(c))
	if err1 != nil || err2 != nil || row < 0 || row > 8 || col < 0 || col > 8 {
		return domain.CellCoord{}, fmt.Errorf("bad coordinate %q", s)
	}
	return domain.CellCoord{Row: row, Col: col}, nil
}

// yamlPuzzle mirrors the YAML schema: givens as 9 strings of digits
// ('.' or '0' for blanks), lines as lists of "row,col" strings.
type yamlPuzzle struct {
	Givens  []string   `yaml:"givens"`
	Mirrors [][]string `yaml:"mirrors,omitempty"`
	Ranges  [][]string `yaml:"ranges,omitempty"`
}

// ParseYAML reads the YAML format.
func ParseYAML(data []byte) (*domain.PuzzleDefinition, error) {
	var yp yamlPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(yp.Givens) != 9 {
		return nil, fmt.Errorf("givens: want 9 rows, got %d", len(yp.Givens))
	}
	def := &domain.PuzzleDefinition{}
	for row, line := range yp.Givens {
		runes := []rune(strings.TrimSpace(line))
		if len(runes) != 9 {
			return nil, fmt.Errorf("givens row %d: want 9 cells, got %d", row, len(runes))
		}
		for col, ch := range runes {
			switch {
			case ch == '.' || ch == '0':
				// blank
			case ch >= '1' && ch <= '9':
				def.Givens[row][col] = uint8(ch - '0')
			default:
				return nil, fmt.Errorf("givens row %d col %d: bad cell %q", row, col, string(ch))
			}
		}
	}
	for i, line := range yp.Mirrors {
		cells, err := coordList(line)
		if err != nil {
			return nil, fmt.Errorf("mirror line %d: %w", i, err)
		}
		def.Mirrors = append(def.Mirrors, domain.MirrorLine(cells))
	}
	for i, line := range yp.Ranges {
		cells, err := coordList(line)
		if err != nil {
			return nil, fmt.Errorf("range line %d: %w", i, err)
		}
		def.Ranges = append(def.Ranges, domain.RangeLine(cells))
	}
	return def, nil
}

func coordList(tokens []string) ([]domain.CellCoord, error) {
	cells := make([]domain.CellCoord, 0, len(tokens))
	for _, t := range tokens {
		cc, err := parseCoord(t)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cc)
	}
	return cells, nil
}
