// Package table loads the test-bench output table and projects the column
// group of one layer pair into a cycle-indexed View.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fmcheck/internal/fmerr"
	"fmcheck/internal/reference"
)

// CycleColumn names the bunch-crossing counter column.
const CycleColumn = "BX#"

// DefaultPrefixes selects the columns the comparison needs.
var DefaultPrefixes = []string{CycleColumn, "enb", "readaddr", "FM_"}

// minHeaderFields is the shortest header the corrections can be applied to.
const minHeaderFields = 8

// Table is the prefix-filtered table. Rows[i] is the i-th data row of the
// file; Rows[i][j] belongs to Columns[j].
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ParseError reports a malformed header or data row.
type ParseError struct {
	File string
	Line int // 1-based; 0 for the header when the file is empty
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return fmerr.ErrParse }

// CorrectHeader rewrites the bench header so repeated fields get distinct
// names matching the data layout: "unit" is inserted after the first name,
// the fifth name gains ".0" and a ".1" twin after it, and the tenth name
// gains a ".1" twin after it.
func CorrectHeader(header []string) ([]string, error) {
	if len(header) < minHeaderFields {
		return nil, fmt.Errorf("header has %d fields, need at least %d", len(header), minHeaderFields)
	}
	names := make([]string, 0, len(header)+3)
	names = append(names, header[0], "unit")
	names = append(names, header[1:]...)
	names[4] += ".0"
	names = insertAt(names, 5, names[4]+".1")
	names = insertAt(names, 10, names[9]+".1")
	return names, nil
}

func insertAt(s []string, i int, v string) []string {
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func selected(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// Load reads the table at path ("-" for stdin, gzip accepted). With no
// prefixes, DefaultPrefixes is used.
func Load(path string, prefixes ...string) (*Table, error) {
	rc, err := reference.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc, path, prefixes...)
}

// Read parses a whitespace-delimited table with a header row from r.
// Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader, name string, prefixes ...string) (*Table, error) {
	if len(prefixes) == 0 {
		prefixes = DefaultPrefixes
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		names []string
		keep  []int
		t     = &Table{Name: name}
		ln    = 0
	)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if names == nil {
			var err error
			if names, err = CorrectHeader(f); err != nil {
				return nil, &ParseError{File: name, Line: ln, Msg: err.Error()}
			}
			for i, n := range names {
				if selected(n, prefixes) {
					keep = append(keep, i)
					t.Columns = append(t.Columns, n)
				}
			}
			continue
		}
		if len(f) != len(names) {
			return nil, &ParseError{File: name, Line: ln,
				Msg: fmt.Sprintf("row has %d fields, header has %d", len(f), len(names))}
		}
		row := make([]string, len(keep))
		for j, i := range keep {
			row[j] = f[i]
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if names == nil {
		return nil, &ParseError{File: name, Line: ln, Msg: "missing header row"}
	}
	return t, nil
}

// ColumnIndex returns the index of the column named exactly name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
