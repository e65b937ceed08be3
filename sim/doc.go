// Package sim provides a discrete-event airtime simulator driving the PHY
// entities of package phy.
//
// # Reading Guide
//
//   - event.go: TxStartEvent and TxEndEvent
//   - simulator.go: the event loop and per-PPDU accounting
//   - config.go: the YAML workload (rates, payload sizes, band, interframe space)
//
// Randomness is drawn from a PartitionedRNG so each subsystem (mode choice,
// payload size) has its own reproducible stream. Decisions can be recorded in
// sim/trace.
package sim
