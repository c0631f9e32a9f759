package output

import "fmcheck/internal/engine"

func sampleReport() engine.Report {
	return engine.Report{
		ReferenceFile: "FullMatches_FM_L1L2_L3PHIC_04.dat",
		Selector:      "L1L2",
		Columns:       [4]string{"BX#", "enb", "readaddr", "FM_L1L2_L3PHIC"},
		Result: engine.Result{
			Tally: engine.Tally{Total: 3, Good: 1, Missing: 1, LengthMismatches: 2, ValueMismatches: 1},
			Diagnostics: []engine.Diagnostic{
				{Kind: engine.MissingEvent, Event: 1},
				{Kind: engine.LengthMismatch, Event: 1, RefLen: 2, ObsLen: 0},
				{Kind: engine.LengthMismatch, Event: 2, RefLen: 2, ObsLen: 1},
				{Kind: engine.ValueMismatch, Event: 2, Address: "0x04", Reference: "0x1A", Observed: "0x1B"},
			},
		},
	}
}
