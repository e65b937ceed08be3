package phy

import (
	"fmt"
	"net"
	"sort"
)

// FcsSize is the length in bytes of the frame check sequence appended to every PSDU.
const FcsSize = 4

// Psdu is the frame container handed to the PHY: addressing plus payload.
type Psdu struct {
	Receiver    net.HardwareAddr
	Transmitter net.HardwareAddr
	Payload     []byte
}

// NewPsdu creates a PSDU carrying payload from transmitter to receiver.
func NewPsdu(receiver, transmitter net.HardwareAddr, payload []byte) *Psdu {
	return &Psdu{Receiver: receiver, Transmitter: transmitter, Payload: payload}
}

// Size returns the PSDU length in bytes including the FCS.
func (p *Psdu) Size() uint32 {
	return uint32(len(p.Payload)) + FcsSize
}

func (p *Psdu) String() string {
	return fmt.Sprintf("Psdu: (ra: %s, ta: %s, size: %d)", p.Receiver, p.Transmitter, p.Size())
}

// PsduMap maps STA-IDs to the PSDU addressed to each. Single-user
// transmissions carry exactly one entry.
type PsduMap map[uint16]*Psdu

// SingleUser wraps psdu in a PsduMap under the broadcast STA-ID.
func SingleUser(psdu *Psdu) PsduMap {
	return PsduMap{SuStaID: psdu}
}

// SuStaID is the STA-ID used for single-user transmissions.
const SuStaID uint16 = 65535

// First returns the entry with the lowest STA-ID.
// Panics on an empty map: building a PPDU without a PSDU is a programming error.
func (m PsduMap) First() (uint16, *Psdu) {
	if len(m) == 0 {
		panic("PsduMap.First: empty PSDU map")
	}
	ids := m.StaIDs()
	return ids[0], m[ids[0]]
}

// StaIDs returns the STA-IDs in ascending order.
func (m PsduMap) StaIDs() []uint16 {
	ids := make([]uint16, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
