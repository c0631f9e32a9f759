// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"fmcheck/internal/engine"
	"fmcheck/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// writeJSONL streams each report as one JSON line (v1).
func writeJSONL(out io.Writer, in <-chan engine.Report, opt Options) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for rep := range in {
		if err := enc.Encode(output.ToAPIReport(rep, opt.RunID)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
