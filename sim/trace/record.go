// Package trace provides transmission-trace recording for airtime analysis.
// It has no dependencies on phy/ or sim/ and stores plain data types.
package trace

import "time"

// TxRecord captures a single PPDU put on the air.
type TxRecord struct {
	UID       uint64
	Clock     time.Duration // start of the PPDU
	Mode      string        // unique mode name
	DataRate  uint64        // bit/s
	PsduBytes uint32        // FCS included
	Duration  time.Duration // preamble + header + payload
}
