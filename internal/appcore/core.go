// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"fmcheck/internal/engine"
	"fmcheck/internal/fmerr"
	"fmcheck/internal/logger"
	"fmcheck/internal/output"
	"fmcheck/internal/pipeline"
	"fmcheck/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitAborted  = 1 // fail-on-error stopped the run
	ExitUsage    = 2
	ExitIO       = 3 // parse, ordering and I/O failures
	ExitCanceled = 130
)

type Options struct {
	Dir            string
	ComparisonFile string
	ReferenceFiles []string

	FailOnError bool

	Format           string
	Text             output.TextOptions
	MismatchExitCode int
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	}
	switch fmerr.KindOf(err) {
	case fmerr.ErrMismatch:
		return ExitAborted
	case fmerr.ErrConfig:
		return ExitUsage
	}
	return ExitIO
}

// Run loads the comparison table once, compares every reference file against
// it and streams one report per file to stdout in the requested format.
func Run(parent context.Context, stdout io.Writer, log *logger.Logger, o Options) int {
	if log == nil {
		log = logger.Discard()
	}
	outw := bufio.NewWriter(stdout)

	cfg := pipeline.Config{Dir: o.Dir, ComparisonFile: o.ComparisonFile, Log: log}
	tbl, err := pipeline.LoadTable(cfg)
	if err != nil {
		log.Error("cannot load comparison table", "file", o.ComparisonFile, "err", err)
		return ExitCode(err)
	}

	runID := uuid.NewString()
	log.Debug("starting run", "run_id", runID, "references", len(o.ReferenceFiles))

	inCh, writeErr := writers.StartReportWriter(outw, o.Format, writers.Options{Text: o.Text, RunID: runID}, 4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	bad := 0
	perr := pipeline.ForEachReference(ctx, cfg, tbl, o.ReferenceFiles, newEngine(o, log),
		func(rep engine.Report) error {
			bad += rep.Result.Tally.Bad()
			select {
			case inCh <- rep:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; werr != nil {
		log.Error("cannot write report", "err", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("cannot write report", "err", e)
		return ExitIO
	}

	if perr != nil {
		var mm *engine.MismatchError
		switch {
		case errors.Is(perr, context.Canceled):
			log.Warn("comparison canceled")
		case errors.As(perr, &mm):
			log.Error("comparison aborted on first mismatch", "event", mm.Diagnostic.Event+1, "kind", mm.Diagnostic.Kind, "err", perr)
		default:
			log.Error("comparison failed", "err", perr)
		}
		return ExitCode(perr)
	}
	if bad > 0 && o.MismatchExitCode != 0 {
		return o.MismatchExitCode
	}
	return ExitOK
}

func newEngine(o Options, log *logger.Logger) *engine.Engine {
	return engine.New(engine.Config{
		FailOnError: o.FailOnError,
		OnEvent: func(i, n int) {
			log.Debugf("doing event %d/%d", i+1, n)
		},
	})
}
