package fs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseTable(t *testing.T) {
	input := "# time energy\n0 10\n\n0.1\t9\n  0.2   7  \n1e-3 -2.5E2\n"

	table, err := ParseTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if table.Rows() != 4 || table.Cols() != 2 {
		t.Fatalf("shape = %dx%d, want 4x2", table.Rows(), table.Cols())
	}

	x, _ := table.Column(0)
	y, _ := table.Column(1)
	if want := []float64{0, 0.1, 0.2, 0.001}; !reflect.DeepEqual(x, want) {
		t.Errorf("column 0 = %v, want %v", x, want)
	}
	if want := []float64{10, 9, 7, -250}; !reflect.DeepEqual(y, want) {
		t.Errorf("column 1 = %v, want %v", y, want)
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{name: "ragged row", input: "1 2\n3 4 5\n", line: 2},
		{name: "short row", input: "1 2\n\n3\n", line: 3},
		{name: "non numeric", input: "1 2\n3 abc\n", line: 2, column: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(tt.input))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if perr.Line != tt.line || perr.Column != tt.column {
				t.Errorf("error at line %d column %d, want line %d column %d", perr.Line, perr.Column, tt.line, tt.column)
			}
		})
	}
}

func TestParseTableEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only a comment\n"} {
		if _, err := ParseTable(strings.NewReader(input)); !errors.Is(err, ErrEmptyTable) {
			t.Errorf("ParseTable(%q) err = %v, want ErrEmptyTable", input, err)
		}
	}
}

func TestColumnOutOfRange(t *testing.T) {
	table, err := ParseTable(strings.NewReader("1 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := table.Column(2); err == nil {
		t.Error("expected error for column 2")
	}
	if _, err := table.Column(-1); err == nil {
		t.Error("expected error for column -1")
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ke.dat")
	if err := os.WriteFile(path, []byte("0 10\n0.1 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if y, _ := table.Column(1); !reflect.DeepEqual(y, []float64{10, 9}) {
		t.Errorf("column 1 = %v, want [10 9]", y)
	}

	if _, err := LoadTable(filepath.Join(dir, "missing.dat")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}
