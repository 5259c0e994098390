package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyTable is returned when a data file holds no data rows.
var ErrEmptyTable = errors.New("table has no data rows")

// ParseError points at the offending line of a data file.
type ParseError struct {
	Line   int
	Column int // 0 for a ragged row
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Table is a rectangular block of samples: one row per sample, one column per quantity.
type Table struct {
	rows [][]float64
	cols int
}

func (t *Table) Rows() int { return len(t.rows) }
func (t *Table) Cols() int { return t.cols }

// Column returns column i in file order.
func (t *Table) Column(i int) ([]float64, error) {
	if i < 0 || i >= t.cols {
		return nil, fmt.Errorf("column %d out of range: table has %d columns", i, t.cols)
	}
	col := make([]float64, len(t.rows))
	for r, row := range t.rows {
		col[r] = row[i]
	}
	return col, nil
}

// LoadTable reads a whitespace-delimited numeric file.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	table, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// ParseTable parses whitespace-delimited numeric rows.
// Blank lines and lines starting with '#' are skipped; every other line must
// carry the same number of numeric fields as the first one.
func ParseTable(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	table := &Table{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if table.cols == 0 {
			table.cols = len(fields)
		} else if len(fields) != table.cols {
			return nil, &ParseError{
				Line:   lineNo,
				Reason: fmt.Sprintf("expected %d columns, got %d", table.cols, len(fields)),
			}
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{
					Line:   lineNo,
					Column: i + 1,
					Reason: fmt.Sprintf("not a number: %q", field),
				}
			}
			row[i] = v
		}
		table.rows = append(table.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	if len(table.rows) == 0 {
		return nil, ErrEmptyTable
	}
	return table, nil
}
