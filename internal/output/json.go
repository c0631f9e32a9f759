// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"fmcheck/internal/engine"
	"fmcheck/pkg/api"
)

// ToAPIDiagnostic converts a domain Diagnostic to the stable wire schema (v1).
func ToAPIDiagnostic(d engine.Diagnostic) api.DiagnosticV1 {
	v := api.DiagnosticV1{
		Kind:    d.Kind.String(),
		Event:   d.Event + 1,
		Message: d.Message(),
	}
	switch d.Kind {
	case engine.LengthMismatch:
		ref, obs := d.RefLen, d.ObsLen
		v.RefLen, v.ObsLen = &ref, &obs
	case engine.ValueMismatch:
		v.Address = d.Address
		v.Reference = d.Reference
		v.Observed = d.Observed
	}
	return v
}

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(rep engine.Report, runID string) api.ReportV1 {
	t := rep.Result.Tally
	v := api.ReportV1{
		RunID:         runID,
		ReferenceFile: rep.ReferenceFile,
		Layers:        string(rep.Selector),
		Columns: api.ColumnsV1{
			Cycle:   rep.Columns[0],
			Valid:   rep.Columns[1],
			Address: rep.Columns[2],
			Value:   rep.Columns[3],
		},
		Tally: api.TallyV1{
			Total:            t.Total,
			Good:             t.Good,
			Bad:              t.Bad(),
			Missing:          t.Missing,
			LengthMismatches: t.LengthMismatches,
			ValueMismatches:  t.ValueMismatches,
		},
	}
	for _, d := range rep.Result.Diagnostics {
		v.Diagnostics = append(v.Diagnostics, ToAPIDiagnostic(d))
	}
	return v
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Report, runID string) error {
	out := make([]api.ReportV1, 0, len(list))
	for _, rep := range list {
		out = append(out, ToAPIReport(rep, runID))
	}
	return EncodePretty(w, out)
}
