// Package reference parses golden reference traces: one event per bunch
// crossing, delimited by "BX = " lines, each event a list of expected values.
package reference

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fmcheck/internal/fmerr"
)

// Delimiter starts every event boundary line.
const Delimiter = "BX = "

// Event holds the expected values of one bunch crossing, in bench order.
type Event struct {
	Values []string
}

// Len is the number of expected values.
func (e Event) Len() int { return len(e.Values) }

// Sequence is the ordered list of events; the slice index is the event index.
type Sequence []Event

// ParseError reports a reference line that does not carry a payload token.
type ParseError struct {
	File string
	Line int // 1-based
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: expected at least 3 fields, got %q", e.File, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return fmerr.ErrParse }

// Normalize maps a raw payload token to its canonical form: uppercase, then
// 'X' back to 'x' so hex prefixes read 0x.
func Normalize(tok string) string {
	return strings.ReplaceAll(strings.ToUpper(tok), "X", "x")
}

// Load reads the reference file at path ("-" for stdin, gzip accepted).
func Load(path string) (Sequence, error) {
	rc, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Parse(rc, path)
}

// Parse reads a reference trace from r; name labels errors.
//
// A delimiter on the very first line opens the first event. Any other
// delimiter closes the current event, even an empty one. The last event is
// always flushed at end of input.
func Parse(r io.Reader, name string) (Sequence, error) {
	var (
		seq    Sequence
		values []string
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.HasPrefix(line, Delimiter) {
			if ln == 1 {
				continue
			}
			seq = append(seq, Event{Values: values})
			values = nil
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return nil, &ParseError{File: name, Line: ln, Text: line}
		}
		values = append(values, Normalize(f[2]))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	seq = append(seq, Event{Values: values})
	return seq, nil
}
