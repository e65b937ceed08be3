package trace

// TraceLevel controls the verbosity of transmission tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelPpdus captures one record per PPDU built.
	TraceLevelPpdus TraceLevel = "ppdus"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelPpdus: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
	RunID string // stamped on the trace for correlation with logs
}

// SimulationTrace collects transmission records during a simulation.
type SimulationTrace struct {
	Config        TraceConfig
	Transmissions []TxRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:        config,
		Transmissions: make([]TxRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelPpdus
}

// RecordTransmission appends a transmission record.
func (st *SimulationTrace) RecordTransmission(record TxRecord) {
	st.Transmissions = append(st.Transmissions, record)
}
