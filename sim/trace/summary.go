package trace

import "time"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransmissions int
	TotalBytes         int64
	TotalAirtime       time.Duration
	MeanDataRate       float64 // bit/s, averaged per PPDU
	MaxDuration        time.Duration
	UniqueModes        int
	ModeDistribution   map[string]int // mode name → count of PPDUs
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ModeDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTransmissions = len(st.Transmissions)
	if summary.TotalTransmissions > 0 {
		totalRate := 0.0
		for _, r := range st.Transmissions {
			summary.ModeDistribution[r.Mode]++
			summary.TotalBytes += int64(r.PsduBytes)
			summary.TotalAirtime += r.Duration
			totalRate += float64(r.DataRate)
			if r.Duration > summary.MaxDuration {
				summary.MaxDuration = r.Duration
			}
		}
		summary.MeanDataRate = totalRate / float64(summary.TotalTransmissions)
	}

	summary.UniqueModes = len(summary.ModeDistribution)

	return summary
}
