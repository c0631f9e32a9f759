// Package fmerr defines the error kinds shared by every fmcheck package.
// Concrete errors wrap one of the kind sentinels so callers can branch with
// errors.Is without knowing which package produced them.
package fmerr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig covers missing inputs and unresolvable column groups.
	ErrConfig = errors.New("configuration error")
	// ErrParse covers malformed reference lines and table rows.
	ErrParse = errors.New("parse error")
	// ErrOrdering is returned when valid rows of one cycle are not contiguous.
	ErrOrdering = errors.New("ordering error")
	// ErrMismatch is returned only when fail-on-error escalates a mismatch.
	ErrMismatch = errors.New("comparison mismatch")
)

// Error attaches an operation label and detail to a kind.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Configf builds an ErrConfig error.
func Configf(op, format string, a ...any) error {
	return &Error{Kind: ErrConfig, Op: op, Err: fmt.Errorf(format, a...)}
}

// Orderingf builds an ErrOrdering error.
func Orderingf(op, format string, a ...any) error {
	return &Error{Kind: ErrOrdering, Op: op, Err: fmt.Errorf(format, a...)}
}

// KindOf returns the kind sentinel err wraps, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrMismatch, ErrOrdering, ErrParse, ErrConfig} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
