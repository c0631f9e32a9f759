// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"fmcheck/internal/engine"
)

// ReportWriter drains in and serializes every report to w.
type ReportWriter func(w io.Writer, in <-chan engine.Report, opt Options) error

// ReportWriters maps an output format to its handler. Formats register
// themselves in init() blocks.
var ReportWriters = map[string]ReportWriter{}

// RegisterReport adds or replaces (last wins) the handler for format.
func RegisterReport(format string, fn ReportWriter) { ReportWriters[format] = fn }

// WriteReports dispatches to the handler registered for format.
func WriteReports(format string, w io.Writer, in <-chan engine.Report, opt Options) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, in, opt)
}
