package phy

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Ppdu is one physical-layer transmission. It is created fresh by
// PhyEntity.BuildPpdu and owned by the caller afterwards.
type Ppdu struct {
	UID        uint64
	Modulation ModulationClass
	Psdus      PsduMap
	TxVector   TxVector
	Band       Band
	Duration   time.Duration // nominal duration handed to BuildPpdu; zero when unknown
}

// Psdu returns the single-user PSDU.
func (p *Ppdu) Psdu() *Psdu {
	_, psdu := p.Psdus.First()
	return psdu
}

func (p *Ppdu) String() string {
	return fmt.Sprintf("Ppdu: (uid: %d, modulation: %s, band: %s, %s)", p.UID, p.Modulation, p.Band, p.TxVector)
}

// UIDSource issues monotonically increasing PPDU identifiers, starting at 0.
// Safe for concurrent use.
type UIDSource struct {
	next atomic.Uint64
}

// Next consumes and returns one identifier.
func (s *UIDSource) Next() uint64 {
	return s.next.Add(1) - 1
}

// Peek returns the identifier the next call to Next will return.
func (s *UIDSource) Peek() uint64 {
	return s.next.Load()
}
