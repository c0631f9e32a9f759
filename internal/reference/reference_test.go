package reference

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmcheck/internal/fmerr"
)

const twoEvents = `BX = 000 Event : 1
00 0|1|000 0x1a
01 0|1|001 a
BX = 001 Event : 2
00 0|1|002 Xff
`

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Sequence
	}{
		"leading delimiter opens first event": {
			input: twoEvents,
			want: Sequence{
				{Values: []string{"0x1A", "A"}},
				{Values: []string{"xFF"}},
			},
		},
		"values before first delimiter form event 0": {
			input: "00 x 1\nBX = 001\n00 x 2\n",
			want: Sequence{
				{Values: []string{"1"}},
				{Values: []string{"2"}},
			},
		},
		"consecutive delimiters keep empty events": {
			input: "BX = 000\nBX = 001\nBX = 002\n00 a b\n",
			want: Sequence{
				{Values: nil},
				{Values: nil},
				{Values: []string{"B"}},
			},
		},
		"trailing delimiter flushes an empty last event": {
			input: "BX = 000\n00 a b\nBX = 001\n",
			want: Sequence{
				{Values: []string{"B"}},
				{Values: nil},
			},
		},
		"empty input is one empty event": {
			input: "",
			want:  Sequence{{Values: nil}},
		},
		"extra fields are ignored": {
			input: "BX = 000\n00 a 0x0 trailing junk\n",
			want:  Sequence{{Values: []string{"0x0"}}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(test.input), "ref.dat")
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParse_ShortLineIsParseError(t *testing.T) {
	for name, input := range map[string]string{
		"two fields": "BX = 000\n00 a\n",
		"blank line": "BX = 000\n00 a b\n\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(input), "ref.dat")
			require.Error(t, err)
			assert.ErrorIs(t, err, fmerr.ErrParse)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "ref.dat", pe.File)
			assert.Greater(t, pe.Line, 1)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "0x1F", Normalize("0X1f"))
	assert.Equal(t, "xx", Normalize("xX"))
	assert.Equal(t, "0B1", Normalize("0b1"))
}

func TestLoad_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "FM_L1L2_L3PHIC_04.dat")
	require.NoError(t, os.WriteFile(plain, []byte(twoEvents), 0o644))

	gz := filepath.Join(dir, "FM_L1L2_L3PHIC_04.dat.gz")
	fh, err := os.Create(gz)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(twoEvents))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	a, err := Load(plain)
	require.NoError(t, err)
	b, err := Load(gz)
	require.NoError(t, err)

	assert.Len(t, a, 2)
	assert.Equal(t, a, b)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
