// Package phy provides the PHY-entity abstraction shared by every waveform
// family of the wifi simulator.
//
// # Reading Guide
//
//   - mode.go: Mode, ModulationClass, CodeRate and the ModeRegistry that hands
//     out one *Mode per unique name
//   - entity.go: the PhyEntity interface and the EntityTable keyed by
//     modulation class
//   - environment.go: the bootstrap context (registry, entity table, PPDU UID
//     sequence, metrics) and the owning Device
//   - txvector.go, psdu.go, ppdu.go: the values flowing through a transmission
//
// # Architecture
//
// The phy package defines interfaces and shared value types; waveform
// families live in sub-packages:
//   - phy/ofdm/: OFDM symbol timing and rate formulas shared by OFDM-derived families
//   - phy/erp/: ERP-OFDM (IEEE 802.11-2016 clause 18)
//
// Families are registered explicitly during bootstrap (erp.Register(env)) so
// start-up ordering stays deterministic. Nothing is registered from init().
package phy
