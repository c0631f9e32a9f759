// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for one reference-file comparison.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	RunID         string         `json:"run_id,omitempty"`
	ReferenceFile string         `json:"reference_file"`
	Layers        string         `json:"layers"`
	Columns       ColumnsV1      `json:"columns"`
	Tally         TallyV1        `json:"tally"`
	Diagnostics   []DiagnosticV1 `json:"diagnostics,omitempty"`
}

// ColumnsV1 names the bench columns the comparison read.
type ColumnsV1 struct {
	Cycle   string `json:"cycle"`
	Valid   string `json:"valid"`
	Address string `json:"address"`
	Value   string `json:"value"`
}

// TallyV1 mirrors the console summary.
type TallyV1 struct {
	Total            int `json:"total"`
	Good             int `json:"good"`
	Bad              int `json:"bad"`
	Missing          int `json:"missing"`
	LengthMismatches int `json:"length_mismatches"`
	ValueMismatches  int `json:"value_mismatches"`
}

// DiagnosticV1 is one mismatch. Event is 1-based, as in the messages.
type DiagnosticV1 struct {
	Kind      string `json:"kind"` // "missing_event" | "length_mismatch" | "value_mismatch"
	Event     int    `json:"event"`
	RefLen    *int   `json:"reference_len,omitempty"`
	ObsLen    *int   `json:"comparison_len,omitempty"`
	Address   string `json:"address,omitempty"`
	Reference string `json:"reference,omitempty"`
	Observed  string `json:"comparison,omitempty"`
	Message   string `json:"message"`
}
