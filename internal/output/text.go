// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"fmcheck/internal/engine"
)

// TextOptions control the console report.
type TextOptions struct {
	Quiet   bool // omit per-mismatch diagnostics, keep the summary
	Verbose bool // also print the resolved column names
}

// indent prefixes every line of msg with prefix.
func indent(msg, prefix string) string {
	return prefix + strings.ReplaceAll(msg, "\n", "\n"+prefix)
}

// DiagnosticIndent is the prefix used for a diagnostic of kind k; value
// mismatches nest one level deeper than event-level mismatches.
func DiagnosticIndent(k engine.Kind) string {
	if k == engine.ValueMismatch {
		return "\t\t"
	}
	return "\t"
}

// WriteText renders one report: a heading, the diagnostics, and the summary.
func WriteText(w io.Writer, rep engine.Report, opt TextOptions) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparing the values for layers %s to the reference file %s ... \n", rep.Selector, rep.ReferenceFile)
	if opt.Verbose {
		fmt.Fprintf(&b, "Columns: %s\n", strings.Join(rep.Columns[:], " "))
	}
	if !opt.Quiet {
		for _, d := range rep.Result.Diagnostics {
			b.WriteString(indent(d.Message(), DiagnosticIndent(d.Kind)))
			b.WriteByte('\n')
		}
	}
	writeSummary(&b, rep.Result.Tally)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, t engine.Tally) {
	fmt.Fprintf(b, "\n%s\n", ResultsBanner)
	fmt.Fprintf(b, "Good events: %d\n", t.Good)
	fmt.Fprintf(b, "Bad events: %d\n", t.Bad())
	fmt.Fprintf(b, "\tMissing events: %d\n", t.Missing)
	fmt.Fprintf(b, "\tLength mismatches: %d\n", t.LengthMismatches)
	fmt.Fprintf(b, "\tValue mismatches: %d\n\n", t.ValueMismatches)
}

// StreamText writes each report as it arrives.
func StreamText(w io.Writer, in <-chan engine.Report, opt TextOptions) error {
	for rep := range in {
		if err := WriteText(w, rep, opt); err != nil {
			return err
		}
	}
	return nil
}
