package engine

import (
	"fmt"

	"fmcheck/internal/fmerr"
	"fmcheck/internal/table"
)

// Kind classifies a mismatch. The three kinds are mutually exclusive per record.
type Kind int

const (
	MissingEvent Kind = iota + 1
	LengthMismatch
	ValueMismatch
)

func (k Kind) String() string {
	switch k {
	case MissingEvent:
		return "missing_event"
	case LengthMismatch:
		return "length_mismatch"
	case ValueMismatch:
		return "value_mismatch"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic describes one mismatch. Event is the 0-based event index;
// messages print it 1-based.
type Diagnostic struct {
	Kind  Kind
	Event int

	// LengthMismatch
	RefLen int
	ObsLen int

	// ValueMismatch
	Address   string
	Reference string
	Observed  string
}

// Message renders the diagnostic the way the console report prints it.
// Multi-line messages use "\n\t" before the detail line.
func (d Diagnostic) Message() string {
	n := d.Event + 1
	switch d.Kind {
	case MissingEvent:
		return fmt.Sprintf("Event %d does not exist in the comparison data!", n)
	case LengthMismatch:
		return fmt.Sprintf("The number of entries in the comparison data doesn't match the number of entries in the reference data for event %d!\n\treference=%d comparison=%d",
			n, d.RefLen, d.ObsLen)
	case ValueMismatch:
		return fmt.Sprintf("The values for event %d address %s do not match!\n\treference=%s comparison=%s",
			n, d.Address, d.Reference, d.Observed)
	}
	return fmt.Sprintf("event %d: %s", n, d.Kind)
}

// Tally counts one comparison run.
type Tally struct {
	Total            int
	Good             int
	Missing          int
	LengthMismatches int
	ValueMismatches  int
}

// Bad is the number of events with at least one mismatch.
func (t Tally) Bad() int { return t.Total - t.Good }

// Clean reports whether every event matched.
func (t Tally) Clean() bool { return t.Good == t.Total }

func (t *Tally) add(k Kind) {
	switch k {
	case MissingEvent:
		t.Missing++
	case LengthMismatch:
		t.LengthMismatches++
	case ValueMismatch:
		t.ValueMismatches++
	}
}

// Result is the outcome of one Compare call.
type Result struct {
	Tally       Tally
	Diagnostics []Diagnostic
}

// MismatchError is returned when FailOnError escalates the first mismatch.
type MismatchError struct {
	Diagnostic Diagnostic
}

func (e *MismatchError) Error() string { return e.Diagnostic.Message() }

func (e *MismatchError) Unwrap() error { return fmerr.ErrMismatch }

// Report is the outcome for one reference file.
type Report struct {
	ReferenceFile string
	Selector      table.Selector
	Columns       [4]string // cycle, valid, address, value
	Result        Result
}
