package writers

import (
	"io"

	"fmcheck/internal/engine"
	"fmcheck/internal/output"
)

// Options are shared by every report format.
type Options struct {
	Text  output.TextOptions
	RunID string // stamped on JSON/JSONL records
}

func init() {
	RegisterReport(output.FormatText, func(w io.Writer, in <-chan engine.Report, opt Options) error {
		return output.StreamText(w, in, opt.Text)
	})
	RegisterReport(output.FormatJSON, func(w io.Writer, in <-chan engine.Report, opt Options) error {
		var buf []engine.Report
		for rep := range in {
			buf = append(buf, rep)
		}
		return output.WriteJSON(w, buf, opt.RunID)
	})
	RegisterReport(output.FormatJSONL, writeJSONL)
}

// StartReportWriter spins up a writer goroutine for engine.Report items.
// Close the returned channel when done and wait on the error channel.
// An unknown format is reported on the error channel; the input is drained
// so senders never block.
func StartReportWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := WriteReports(format, out, in, opt)
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
