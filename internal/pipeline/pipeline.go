package pipeline

import (
	"context"
	"path/filepath"

	"fmcheck/internal/engine"
	"fmcheck/internal/fmerr"
	"fmcheck/internal/logger"
	"fmcheck/internal/reference"
	"fmcheck/internal/table"
)

// Comparer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Comparer interface {
	Compare(ctx context.Context, seq reference.Sequence, obs engine.Observed) (engine.Result, error)
}

// Config controls one run.
type Config struct {
	Dir            string // directory holding the table and the reference files
	ComparisonFile string // bench output table, relative to Dir
	Prefixes       []string
	Log            *logger.Logger
}

// Path joins name onto dir unless name is absolute or "-".
func Path(dir, name string) string {
	if name == "-" || filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// LoadTable loads the comparison table named by cfg.
func LoadTable(cfg Config) (*table.Table, error) {
	return table.Load(Path(cfg.Dir, cfg.ComparisonFile), cfg.Prefixes...)
}

// ForEachReference compares every reference file against tbl, in order, and
// calls visit with each Report. Files share nothing but the read-only table.
// It returns the first error encountered (including context cancellation).
func ForEachReference(
	ctx context.Context,
	cfg Config,
	tbl *table.Table,
	refFiles []string,
	cmp Comparer,
	visit func(engine.Report) error,
) error {
	if len(refFiles) == 0 {
		return fmerr.Configf("pipeline", "no reference files were specified; at least one is needed to run the comparison")
	}
	log := cfg.Log
	if log == nil {
		log = logger.Discard()
	}
	log.Debug("loaded comparison table", "file", tbl.Name, "columns", tbl.Columns, "rows", len(tbl.Rows))

	for _, name := range refFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		rep, err := compareOne(ctx, cfg.Dir, tbl, name, cmp, log)
		if err != nil {
			return err
		}
		if err := visit(rep); err != nil {
			return err
		}
	}
	return nil
}

func compareOne(ctx context.Context, dir string, tbl *table.Table, name string, cmp Comparer, log *logger.Logger) (engine.Report, error) {
	sel, err := table.SelectorFromFilename(name)
	if err != nil {
		return engine.Report{}, err
	}
	log.Info("comparing layers to reference file", "layers", sel, "reference", name)

	seq, err := reference.Load(Path(dir, name))
	if err != nil {
		return engine.Report{}, err
	}
	schema, err := tbl.Resolve(sel)
	if err != nil {
		return engine.Report{}, err
	}
	view, err := tbl.View(schema)
	if err != nil {
		return engine.Report{}, err
	}
	log.Debug("resolved columns", "layers", sel, "columns", view.Columns, "events", len(seq))

	res, err := cmp.Compare(ctx, seq, view)
	if err != nil {
		return engine.Report{}, err
	}
	return engine.Report{
		ReferenceFile: name,
		Selector:      sel,
		Columns:       view.Columns,
		Result:        res,
	}, nil
}
