package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmcheck/internal/fmerr"
)

func loadBench(t *testing.T) *Table {
	t.Helper()
	tbl, err := Read(strings.NewReader(benchTable), "output.txt")
	require.NoError(t, err)
	return tbl
}

func TestSelectorFromFilename(t *testing.T) {
	tests := map[string]struct {
		path     string
		want     Selector
		wantFail bool
	}{
		"plain":          {path: "FullMatches_FM_L1L2_L3PHIC_04.dat", want: "L1L2"},
		"with directory": {path: "/tmp/L9L9/FullMatches_FM_L5L6_L3PHIC_04.dat", want: "L5L6"},
		"first match":    {path: "FM_L3L4_L1L2.dat", want: "L3L4"},
		"no pair":        {path: "FullMatches_FM_D1D2.dat", wantFail: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := SelectorFromFilename(test.path)
			if test.wantFail {
				assert.ErrorIs(t, err, fmerr.ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestTable_Resolve(t *testing.T) {
	tbl := loadBench(t)

	s, err := tbl.Resolve("L1L2")
	require.NoError(t, err)
	assert.Equal(t, Schema{Selector: "L1L2", Cycle: 0, Valid: 1, Address: 2, Value: 3}, s)
	assert.Equal(t, [4]string{"BX#", "enb", "readaddr", "FM_L1L2_L3PHIC"}, tbl.ColumnNames(s))

	s, err = tbl.Resolve("L5L6")
	require.NoError(t, err)
	assert.Equal(t, [4]string{"BX#", "enb_2.1", "readaddr_2", "FM_L5L6_L3PHIC"}, tbl.ColumnNames(s))
}

func TestTable_Resolve_Errors(t *testing.T) {
	tbl := loadBench(t)

	_, err := tbl.Resolve("L3L4")
	assert.ErrorIs(t, err, fmerr.ErrConfig)
	assert.Contains(t, err.Error(), "L3L4")

	_, err = tbl.Resolve("")
	assert.ErrorIs(t, err, fmerr.ErrConfig)

	early := &Table{Name: "x", Columns: []string{"BX#", "FM_L1L2"}}
	_, err = early.Resolve("L1L2")
	assert.ErrorIs(t, err, fmerr.ErrConfig)

	noCycle := &Table{Name: "x", Columns: []string{"enb", "readaddr", "FM_L1L2"}}
	_, err = noCycle.Resolve("L1L2")
	assert.ErrorIs(t, err, fmerr.ErrConfig)
}

func TestTable_View(t *testing.T) {
	tbl := loadBench(t)
	s, err := tbl.Resolve("L1L2")
	require.NoError(t, err)

	v, err := tbl.View(s)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())

	c0 := v.Cycle(0)
	require.Len(t, c0, 2)
	assert.Equal(t, Row{Pos: 0, Cycle: 0, Valid: "0b1", Address: "0x00", Value: "0x1A"}, c0[0])
	assert.Equal(t, 1, c0[1].Pos)
	assert.True(t, c0[1].IsValid())

	c1 := v.Cycle(1)
	require.Len(t, c1, 1)
	assert.Equal(t, 2, c1[0].Pos)
	assert.False(t, c1[0].IsValid())

	assert.Nil(t, v.Cycle(7))
}

func TestTable_View_BadCycle(t *testing.T) {
	tbl := &Table{
		Name:    "x",
		Columns: []string{"BX#", "enb", "readaddr", "FM_L1L2"},
		Rows:    [][]string{{"zero", "0b1", "0x0", "A"}},
	}
	s, err := tbl.Resolve("L1L2")
	require.NoError(t, err)

	_, err = tbl.View(s)
	assert.ErrorIs(t, err, fmerr.ErrParse)
}
