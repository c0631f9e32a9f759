package cli

import (
	"os"

	"gopkg.in/yaml.v2"

	"fmcheck/internal/fmerr"
)

// FileConfig is the YAML run config. Unset keys leave the flag default alone.
type FileConfig struct {
	ComparisonFile   *string  `yaml:"comparison_file"`
	FileLocation     *string  `yaml:"file_location"`
	ReferenceFiles   []string `yaml:"reference_files"`
	FailOnError      *bool    `yaml:"fail_on_error"`
	Verbose          *bool    `yaml:"verbose"`
	Output           *string  `yaml:"output"`
	LogLevel         *string  `yaml:"log_level"`
	MismatchExitCode *int     `yaml:"mismatch_exit_code"`
}

// LoadFile reads a YAML run config. Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmerr.Configf("config", "read %s: %v", path, err)
	}
	var fc FileConfig
	if err := yaml.UnmarshalStrict(bs, &fc); err != nil {
		return nil, fmerr.Configf("config", "parse %s: %v", path, err)
	}
	return &fc, nil
}

// apply copies config values into o for every option not given on the
// command line; isSet reports that by long flag name.
func (fc *FileConfig) apply(o *Options, isSet func(long string) bool) {
	if fc.ComparisonFile != nil && !isSet("comparison-file") {
		o.ComparisonFile = *fc.ComparisonFile
	}
	if fc.FileLocation != nil && !isSet("file-location") {
		o.FileLocation = *fc.FileLocation
	}
	if len(fc.ReferenceFiles) > 0 && !isSet("reference-files") {
		o.ReferenceFiles = fc.ReferenceFiles
	}
	if fc.FailOnError != nil && !isSet("fail-on-error") {
		o.FailOnError = *fc.FailOnError
	}
	if fc.Verbose != nil && !isSet("verbose") {
		o.Verbose = *fc.Verbose
	}
	if fc.Output != nil && !isSet("output") {
		o.Output = *fc.Output
	}
	if fc.LogLevel != nil && !isSet("log-level") {
		o.LogLevel = *fc.LogLevel
	}
	if fc.MismatchExitCode != nil && !isSet("mismatch-exit-code") {
		o.MismatchExitCode = *fc.MismatchExitCode
	}
}
