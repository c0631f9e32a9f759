// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmcheck/internal/engine"
	"fmcheck/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []engine.Report{sampleReport()}, "run-1"))

	var got []api.ReportV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)

	r := got[0]
	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, "L1L2", r.Layers)
	assert.Equal(t, api.ColumnsV1{Cycle: "BX#", Valid: "enb", Address: "readaddr", Value: "FM_L1L2_L3PHIC"}, r.Columns)
	assert.Equal(t, api.TallyV1{Total: 3, Good: 1, Bad: 2, Missing: 1, LengthMismatches: 2, ValueMismatches: 1}, r.Tally)
	require.Len(t, r.Diagnostics, 4)
	assert.Equal(t, "missing_event", r.Diagnostics[0].Kind)
	assert.Equal(t, 2, r.Diagnostics[0].Event)
}

func TestToAPIDiagnostic(t *testing.T) {
	l := ToAPIDiagnostic(engine.Diagnostic{Kind: engine.LengthMismatch, Event: 0, RefLen: 3, ObsLen: 0})
	require.NotNil(t, l.RefLen)
	require.NotNil(t, l.ObsLen)
	assert.Equal(t, 3, *l.RefLen)
	assert.Equal(t, 0, *l.ObsLen)
	assert.Empty(t, l.Address)

	v := ToAPIDiagnostic(engine.Diagnostic{Kind: engine.ValueMismatch, Event: 4, Address: "0x2", Reference: "A", Observed: "B"})
	assert.Nil(t, v.RefLen)
	assert.Equal(t, 5, v.Event)
	assert.Equal(t, "B", v.Observed)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "reference_len")
	assert.Contains(t, string(b), `"comparison":"B"`)
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil, ""))
	assert.Equal(t, "[]\n", buf.String())
}
