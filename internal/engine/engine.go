package engine

import (
	"context"

	"fmcheck/internal/fmerr"
	"fmcheck/internal/reference"
	"fmcheck/internal/table"
)

// Config controls one Engine.
type Config struct {
	// FailOnError stops at the first mismatch with a *MismatchError.
	FailOnError bool

	// OnEvent, if set, is called before each event is compared.
	OnEvent func(index, total int)
}

// Observed is the capability the engine needs from the bench table.
// *table.View satisfies it.
type Observed interface {
	Cycle(c int) []table.Row
}

type Engine struct{ cfg Config }

func New(c Config) *Engine { return &Engine{cfg: c} }

/* -------------------------------------------------------------------------- */
/*                                 Compare                                    */
/* -------------------------------------------------------------------------- */

// Compare aligns seq with obs by event index and classifies every
// discrepancy. Event i is matched against the valid rows of cycle i; the
// k-th expected value is compared with the k-th valid row.
//
// On error the partial Result accumulated so far is returned with it.
func (e *Engine) Compare(ctx context.Context, seq reference.Sequence, obs Observed) (Result, error) {
	res := Result{Tally: Tally{Total: len(seq)}}

	for i, ev := range seq {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if e.cfg.OnEvent != nil {
			e.cfg.OnEvent(i, len(seq))
		}

		good := true
		emit := func(d Diagnostic) error {
			good = false
			res.Tally.add(d.Kind)
			res.Diagnostics = append(res.Diagnostics, d)
			if e.cfg.FailOnError {
				return &MismatchError{Diagnostic: d}
			}
			return nil
		}

		if err := compareEvent(i, ev, obs.Cycle(i), emit); err != nil {
			return res, err
		}
		if good {
			res.Tally.Good++
		}
	}
	return res, nil
}

func compareEvent(i int, ev reference.Event, rows []table.Row, emit func(Diagnostic) error) error {
	if len(rows) == 0 && ev.Len() != 0 {
		if err := emit(Diagnostic{Kind: MissingEvent, Event: i}); err != nil {
			return err
		}
	}

	valid := rows[:0:0]
	for _, r := range rows {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}

	if len(valid) != ev.Len() {
		if err := emit(Diagnostic{Kind: LengthMismatch, Event: i, RefLen: ev.Len(), ObsLen: len(valid)}); err != nil {
			return err
		}
	}
	if len(valid) == 0 {
		return nil
	}

	// Positional alignment needs the valid rows to be one contiguous run.
	offset := valid[0].Pos
	for k, r := range valid {
		if r.Pos != offset+k {
			return fmerr.Orderingf("compare",
				"event %d: valid rows are not contiguous (row %d follows row %d)", i+1, r.Pos, valid[k-1].Pos)
		}
	}

	for ival, want := range ev.Values {
		if ival >= len(valid) {
			break
		}
		r := valid[ival]
		if r.Value == want {
			continue
		}
		if err := emit(Diagnostic{
			Kind:      ValueMismatch,
			Event:     i,
			Address:   r.Address,
			Reference: want,
			Observed:  r.Value,
		}); err != nil {
			return err
		}
	}
	return nil
}
