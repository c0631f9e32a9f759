// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"fmcheck/internal/cliutil"
	"fmcheck/internal/fmerr"
	"fmcheck/internal/logger"
	"fmcheck/internal/output"
)

// Name is the program name used in usage and version output.
const Name = "fmcheck"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	ComparisonFile string   `short:"c" long:"comparison-file" description:"bench output table to check" default:"output.txt"`
	ReferenceFiles []string `short:"r" long:"reference-files" description:"reference file(s) or doublestar patterns (repeatable)"`
	FileLocation   string   `short:"l" long:"file-location" description:"directory holding all input files" default:"./"`
	ConfigFile     string   `long:"config" description:"YAML run config; explicit flags take precedence"`

	// Comparison
	FailOnError bool `short:"f" long:"fail-on-error" description:"abort on the first mismatch"`

	// Output
	Output           string `short:"o" long:"output" description:"output format (text|json|jsonl)" default:"text"`
	Quiet            bool   `short:"q" long:"quiet" description:"suppress per-mismatch diagnostics in text output"`
	Verbose          bool   `short:"v" long:"verbose" description:"debug logging and resolved column names"`
	LogLevel         string `long:"log-level" description:"log level (debug|info|warn|error)" default:"info"`
	MismatchExitCode int    `long:"mismatch-exit-code" description:"exit code when bad events were found" default:"0"`

	Version bool `short:"V" long:"version" description:"print version and exit"`
}

// IsHelp reports whether err is the help request produced by ParseArgs.
// The error text is the rendered help.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

func newParser(opt *Options) *flags.Parser {
	p := flags.NewParser(opt, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = Name
	p.Usage = "[OPTIONS] [reference files...]"
	return p
}

// ParseArgs parses argv (without the program name), merges the optional YAML
// config, expands reference patterns and validates the result. Flag syntax
// errors and help requests are returned unwrapped (see IsHelp); everything
// else wraps fmerr.ErrConfig.
func ParseArgs(argv []string) (Options, error) {
	var opt Options
	p := newParser(&opt)

	rest, err := p.ParseArgs(argv)
	if err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}
	opt.ReferenceFiles = append(opt.ReferenceFiles, rest...)

	explicit := func(long string) bool {
		if long == "reference-files" && len(rest) > 0 {
			return true
		}
		o := p.FindOptionByLongName(long)
		return o != nil && o.IsSet()
	}
	levelGiven := explicit("log-level")
	if opt.ConfigFile != "" {
		fc, err := LoadFile(opt.ConfigFile)
		if err != nil {
			return opt, err
		}
		fc.apply(&opt, explicit)
		levelGiven = levelGiven || fc.LogLevel != nil
	}
	if opt.Verbose && !levelGiven {
		opt.LogLevel = "debug"
	}

	if err := Validate(&opt); err != nil {
		return opt, err
	}

	exp, err := cliutil.ExpandPatterns(opt.FileLocation, opt.ReferenceFiles)
	if err != nil {
		return opt, err
	}
	opt.ReferenceFiles = exp
	return opt, nil
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	const op = "cli"
	if o.ComparisonFile == "" {
		return fmerr.Configf(op, "--comparison-file must not be empty")
	}
	if len(o.ReferenceFiles) == 0 {
		return fmerr.Configf(op, "no reference files were specified; at least one is needed to run the comparison")
	}
	if !validFormat(o.Output) {
		return fmerr.Configf(op, "invalid --output %q (want one of %v)", o.Output, output.Formats)
	}
	if !logger.ValidName(o.LogLevel) {
		return fmerr.Configf(op, "invalid --log-level %q", o.LogLevel)
	}
	if o.MismatchExitCode < 0 || o.MismatchExitCode > 255 {
		return fmerr.Configf(op, "--mismatch-exit-code must be between 0 and 255")
	}
	return nil
}

func validFormat(f string) bool {
	for _, x := range output.Formats {
		if f == x {
			return true
		}
	}
	return false
}

// Usage renders the help text.
func Usage() string {
	var opt Options
	p := newParser(&opt)
	_, err := p.ParseArgs([]string{"--help"})
	if err == nil {
		return ""
	}
	return fmt.Sprint(err)
}
