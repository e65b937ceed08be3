package trace

import "testing"

func TestIsValidTraceLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"ppdus", true},
		{"", true},
		{"decisions", false},
		{"PPDUS", false},
	}
	for _, tt := range tests {
		if got := IsValidTraceLevel(tt.level); got != tt.valid {
			t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
		}
	}
}

func TestSimulationTrace_Enabled(t *testing.T) {
	var nilTrace *SimulationTrace
	if nilTrace.Enabled() {
		t.Error("nil trace must not be enabled")
	}
	if NewSimulationTrace(TraceConfig{Level: TraceLevelNone}).Enabled() {
		t.Error("level none must not be enabled")
	}
	if !NewSimulationTrace(TraceConfig{Level: TraceLevelPpdus}).Enabled() {
		t.Error("level ppdus must be enabled")
	}
}

func TestSimulationTrace_RecordTransmission_PreservesOrder(t *testing.T) {
	// GIVEN a trace stamped with a run ID
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelPpdus, RunID: "run-1"})

	// WHEN two records are appended
	st.RecordTransmission(TxRecord{UID: 7, Mode: "ErpOfdmRate12Mbps"})
	st.RecordTransmission(TxRecord{UID: 8, Mode: "ErpOfdmRate18Mbps"})

	// THEN both are kept in order
	if len(st.Transmissions) != 2 {
		t.Fatalf("expected 2 records, got %d", len(st.Transmissions))
	}
	if st.Transmissions[0].UID != 7 || st.Transmissions[1].UID != 8 {
		t.Errorf("records out of order: %+v", st.Transmissions)
	}
	if st.Config.RunID != "run-1" {
		t.Errorf("expected run ID run-1, got %q", st.Config.RunID)
	}
}
