// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"fmcheck/internal/appcore"
	"fmcheck/internal/cli"
	"fmcheck/internal/logger"
	"fmcheck/internal/output"
	"fmcheck/internal/version"
	"fmcheck/internal/writers"
)

// printOut writes s to stdout and maps write failures to an exit code.
func printOut(stdout, stderr io.Writer, s string) int {
	outw := bufio.NewWriter(stdout)
	_, _ = io.WriteString(outw, s)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return appcore.ExitOK
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		return printOut(stdout, stderr, cli.Usage())
	}

	opts, err := cli.ParseArgs(argv)
	if err != nil {
		if cli.IsHelp(err) {
			return printOut(stdout, stderr, err.Error()+"\n")
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\nrun '%s --help' for usage\n", err, cli.Name)
		return appcore.ExitUsage
	}

	if opts.Version {
		return printOut(stdout, stderr, fmt.Sprintf("%s version %s\n", cli.Name, version.Version))
	}

	logger.Level.SetByName(opts.LogLevel)
	log := logger.New(stderr)

	return appcore.Run(parent, stdout, log, appcore.Options{
		Dir:              opts.FileLocation,
		ComparisonFile:   opts.ComparisonFile,
		ReferenceFiles:   opts.ReferenceFiles,
		FailOnError:      opts.FailOnError,
		Format:           opts.Output,
		Text:             output.TextOptions{Quiet: opts.Quiet, Verbose: opts.Verbose},
		MismatchExitCode: opts.MismatchExitCode,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
