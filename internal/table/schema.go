package table

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"fmcheck/internal/fmerr"
)

// ValidToken is the valid-bit value of a row that takes part in comparison.
const ValidToken = "0b1"

var selectorRe = regexp.MustCompile(`L[0-9]L[0-9]`)

// Selector names a layer pair, e.g. "L1L2".
type Selector string

// SelectorFromFilename extracts the layer pair from a reference file name
// such as FullMatches_FM_L1L2_L3PHIC_04.dat.
func SelectorFromFilename(path string) (Selector, error) {
	m := selectorRe.FindString(filepath.Base(path))
	if m == "" {
		return "", fmerr.Configf("layer selector", "no layer pair matching %s in %q", selectorRe, path)
	}
	return Selector(m), nil
}

// Schema holds the fixed column indices of one layer pair. The valid,
// address and value columns are contiguous in that order.
type Schema struct {
	Selector Selector
	Cycle    int
	Valid    int
	Address  int
	Value    int
}

// Resolve finds the first column whose name contains sel; it is the value
// column, preceded by the address and valid columns.
func (t *Table) Resolve(sel Selector) (Schema, error) {
	s := Schema{Selector: sel, Cycle: t.ColumnIndex(CycleColumn), Value: -1}
	if s.Cycle < 0 {
		return Schema{}, fmerr.Configf(t.Name, "no %q column", CycleColumn)
	}
	for i, c := range t.Columns {
		if sel != "" && strings.Contains(c, string(sel)) {
			s.Value = i
			break
		}
	}
	if s.Value < 0 {
		return Schema{}, fmerr.Configf(t.Name, "no column matches layer pair %q", sel)
	}
	if s.Value < 2 {
		return Schema{}, fmerr.Configf(t.Name, "column %q for layer pair %q has no valid/address columns before it",
			t.Columns[s.Value], sel)
	}
	s.Address = s.Value - 1
	s.Valid = s.Value - 2
	return s, nil
}

// ColumnNames returns the names of the cycle, valid, address and value columns.
func (t *Table) ColumnNames(s Schema) [4]string {
	return [4]string{t.Columns[s.Cycle], t.Columns[s.Valid], t.Columns[s.Address], t.Columns[s.Value]}
}

// Row is one table row projected onto a Schema. Pos is the row's position
// among all data rows of the table.
type Row struct {
	Pos     int
	Cycle   int
	Valid   string
	Address string
	Value   string
}

// IsValid reports whether the row's valid bit is set.
func (r Row) IsValid() bool { return r.Valid == ValidToken }

// View is the projection of a Table onto one Schema, indexed by cycle.
type View struct {
	Schema  Schema
	Columns [4]string
	Rows    []Row
	byCycle map[int][]int
}

// View projects every row onto s. A cycle field that is not an integer is a
// parse error.
func (t *Table) View(s Schema) (*View, error) {
	v := &View{
		Schema:  s,
		Columns: t.ColumnNames(s),
		Rows:    make([]Row, 0, len(t.Rows)),
		byCycle: make(map[int][]int),
	}
	for pos, r := range t.Rows {
		cyc, err := strconv.Atoi(r[s.Cycle])
		if err != nil {
			return nil, &fmerr.Error{Kind: fmerr.ErrParse, Op: t.Name,
				Err: fmt.Errorf("data row %d: bad %s value %q", pos+1, t.Columns[s.Cycle], r[s.Cycle])}
		}
		v.Rows = append(v.Rows, Row{
			Pos:     pos,
			Cycle:   cyc,
			Valid:   r[s.Valid],
			Address: r[s.Address],
			Value:   r[s.Value],
		})
		v.byCycle[cyc] = append(v.byCycle[cyc], pos)
	}
	return v, nil
}

// Cycle returns the rows of cycle c in table order.
func (v *View) Cycle(c int) []Row {
	idx := v.byCycle[c]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Row, len(idx))
	for i, pos := range idx {
		out[i] = v.Rows[pos]
	}
	return out
}

// Len is the number of projected rows.
func (v *View) Len() int { return len(v.Rows) }
