// internal/cliutil/cliutil.go
package cliutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"fmcheck/internal/fmerr"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[{") }

// ExpandPatterns expands doublestar patterns among reference-file arguments.
// Relative patterns are matched inside dir and the matches stay relative to
// it; absolute patterns are matched against the filesystem. Plain names and
// "-" pass through untouched. A pattern that matches nothing is a
// configuration error.
func ExpandPatterns(dir string, patterns []string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	var out []string
	for _, a := range patterns {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(a)) {
			return nil, fmerr.Configf("cli", "bad pattern %q", a)
		}
		var (
			m   []string
			err error
		)
		if filepath.IsAbs(a) {
			m, err = doublestar.FilepathGlob(a, doublestar.WithFilesOnly())
		} else {
			m, err = doublestar.Glob(os.DirFS(dir), filepath.ToSlash(a), doublestar.WithFilesOnly())
			for i := range m {
				m[i] = filepath.FromSlash(m[i])
			}
		}
		if err != nil {
			return nil, fmerr.Configf("cli", "bad pattern %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmerr.Configf("cli", "no reference file matched %q in %s", a, dir)
		}
		out = append(out, m...)
	}
	return out, nil
}
