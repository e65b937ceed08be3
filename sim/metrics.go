package sim

import (
	"fmt"
	"io"
	"time"
)

// Metrics aggregates statistics about a simulation run for final reporting.
type Metrics struct {
	Transmissions int           // PPDUs that finished on the air
	PayloadBytes  int64         // sum of PSDU sizes, FCS included
	Airtime       time.Duration // sum of PPDU durations
	SimEndedTime  time.Duration // clock when the run stopped
}

// Throughput returns the delivered PSDU bits per second of simulated time.
func (m *Metrics) Throughput() float64 {
	if m.SimEndedTime <= 0 {
		return 0
	}
	return float64(m.PayloadBytes*8) / m.SimEndedTime.Seconds()
}

// Utilization returns the fraction of simulated time the medium was busy.
func (m *Metrics) Utilization() float64 {
	if m.SimEndedTime <= 0 {
		return 0
	}
	return float64(m.Airtime) / float64(m.SimEndedTime)
}

// Print writes the aggregated metrics to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Transmissions        : %d\n", m.Transmissions)
	fmt.Fprintf(w, "PSDU Bytes           : %d\n", m.PayloadBytes)
	fmt.Fprintf(w, "Airtime              : %v\n", m.Airtime)
	fmt.Fprintf(w, "Simulated Time       : %v\n", m.SimEndedTime)
	if m.Transmissions > 0 {
		fmt.Fprintf(w, "Medium Utilization   : %.2f%%\n", 100*m.Utilization())
		fmt.Fprintf(w, "Throughput           : %.3f Mbps\n", m.Throughput()/1e6)
	}
}
