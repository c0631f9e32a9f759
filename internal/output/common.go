package output

// Output formats understood by the report writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every format in help-text order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}

// ResultsBanner heads the summary block of a text report.
const ResultsBanner = "Results\n======="
