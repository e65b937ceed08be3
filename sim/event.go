package sim

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wifi-sim/wifi-sim/phy"
)

// Event is a simulation event. Events execute in timestamp order; ties are
// broken by type priority and then by scheduling order.
type Event interface {
	Timestamp() time.Duration
	Priority() int
	EventID() int64
	Execute(*Simulator)
}

// Type priorities: a transmission ends before the next one may start at the
// same instant.
const (
	priorityTxEnd   = 0
	priorityTxStart = 1
)

// TxStartEvent starts one transmission.
type TxStartEvent struct {
	time time.Duration
	id   int64
}

func (e *TxStartEvent) Timestamp() time.Duration { return e.time }
func (e *TxStartEvent) Priority() int            { return priorityTxStart }
func (e *TxStartEvent) EventID() int64           { return e.id }

// Execute builds the next PPDU and schedules its end.
func (e *TxStartEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< TxStart at %v", e.time)
	sim.startTransmission(e.time)
}

// TxEndEvent marks the end of a PPDU on the air.
type TxEndEvent struct {
	time     time.Duration
	id       int64
	ppdu     *phy.Ppdu
	duration time.Duration
}

func (e *TxEndEvent) Timestamp() time.Duration { return e.time }
func (e *TxEndEvent) Priority() int            { return priorityTxEnd }
func (e *TxEndEvent) EventID() int64           { return e.id }

// Execute accounts the finished PPDU and schedules the next start, if any.
func (e *TxEndEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< TxEnd uid=%d at %v", e.ppdu.UID, e.time)
	sim.endTransmission(e.time, e.ppdu, e.duration)
}
