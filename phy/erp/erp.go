// Package erp implements the ERP-OFDM PHY entity (IEEE 802.11-2016 clause 18):
// the OFDM waveform as used in the 2.4 GHz band, restricted to 20 MHz and a
// single spatial stream.
package erp

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/ofdm"
)

const (
	preambleDuration = 16 * time.Microsecond // L-STF + L-LTF
	headerDuration   = 4 * time.Microsecond  // L-SIG
)

// MaxPsduSize is the largest PSDU in bytes the 12-bit L-SIG LENGTH field can carry.
const MaxPsduSize = 4095

// ErpOfdmPhy is the ERP-OFDM PhyEntity. The static instance registered in the
// environment has no owner; devices use copies bound through WithOwner.
type ErpOfdmPhy struct {
	reg      *phy.ModeRegistry
	modeList []*phy.Mode // ascending rate order; shared between bound copies, never modified
	owner    phy.Owner
}

var _ phy.PhyEntity = (*ErpOfdmPhy)(nil)

// New creates an ERP-OFDM entity whose modes live in reg. Only the eight
// ERP-OFDM modes are listed; the clause 17 OFDM modes are not added.
func New(reg *phy.ModeRegistry) *ErpOfdmPhy {
	p := &ErpOfdmPhy{reg: reg}
	for _, rate := range SupportedBitRates() {
		mode, err := ModeForRate(reg, rate)
		if err != nil {
			panic(fmt.Sprintf("erp.New: %v", err))
		}
		logrus.Debugf("Add %s to list", mode)
		p.modeList = append(p.modeList, mode)
	}
	return p
}

func (p *ErpOfdmPhy) ModulationClass() phy.ModulationClass {
	return phy.ModClassErpOfdm
}

// Modes returns the supported modes, 6 Mbps first.
func (p *ErpOfdmPhy) Modes() []*phy.Mode {
	out := make([]*phy.Mode, len(p.modeList))
	copy(out, p.modeList)
	return out
}

func (p *ErpOfdmPhy) IsModeSupported(name string) bool {
	for _, m := range p.modeList {
		if m.Name() == name {
			return true
		}
	}
	return false
}

// HeaderMode returns the 6 Mbps mode whatever the payload mode.
// Panics if txVector does not carry an ERP-OFDM mode.
func (p *ErpOfdmPhy) HeaderMode(txVector phy.TxVector) *phy.Mode {
	mustBeErpOfdm("HeaderMode", txVector)
	return Rate6Mbps(p.reg)
}

func (p *ErpOfdmPhy) PreambleDuration(phy.TxVector) time.Duration {
	return preambleDuration
}

func (p *ErpOfdmPhy) HeaderDuration(phy.TxVector) time.Duration {
	return headerDuration
}

// PayloadDuration returns the DATA field airtime for a PSDU of size bytes.
// In the 2.4 GHz band the 6 µs signal extension is included.
func (p *ErpOfdmPhy) PayloadDuration(size uint32, txVector phy.TxVector, band phy.Band) time.Duration {
	mustBeErpOfdm("PayloadDuration", txVector)
	dataRate, err := p.DataRateFromTxVector(txVector, phy.SuStaID)
	if err != nil {
		panic(fmt.Sprintf("ErpOfdmPhy.PayloadDuration: %v", err))
	}
	d := ofdm.PayloadDuration(size, dataRate, txVector.ChannelWidth())
	if band == phy.Band2_4GHz {
		d += ofdm.SignalExtension
	}
	return d
}

// BuildPpdu packages the PSDU with the lowest STA-ID into a single-user PPDU.
// ERP-OFDM carries one PSDU per transmission; further entries are ignored.
// Consumes one UID from the owner. Panics on an unbound entity.
func (p *ErpOfdmPhy) BuildPpdu(psdus phy.PsduMap, txVector phy.TxVector, ppduDuration time.Duration) *phy.Ppdu {
	if p.owner == nil {
		panic("ErpOfdmPhy.BuildPpdu: entity has no owning PHY")
	}
	staID, psdu := psdus.First()
	ppdu := &phy.Ppdu{
		UID:        p.owner.ObtainNextUID(txVector),
		Modulation: phy.ModClassErpOfdm,
		Psdus:      phy.PsduMap{staID: psdu},
		TxVector:   txVector,
		Band:       p.owner.Band(),
		Duration:   ppduDuration,
	}
	logrus.Tracef("built %s carrying %s", ppdu, psdu)
	return ppdu
}

// DataRateFromTxVector returns the data rate for staID; staID only matters
// when txVector carries a per-STA mode override.
func (p *ErpOfdmPhy) DataRateFromTxVector(txVector phy.TxVector, staID uint16) (uint64, error) {
	mode := txVector.ModeFor(staID)
	if mode == nil {
		return 0, fmt.Errorf("%w: TxVector has no mode", phy.ErrConfiguration)
	}
	return DataRate(mode.Name(), txVector.ChannelWidth(), txVector.GuardInterval(), txVector.Nss())
}

// IsModeAllowed is always true: ERP-OFDM is single-stream at a fixed width,
// so neither parameter can disqualify a mode.
func (p *ErpOfdmPhy) IsModeAllowed(uint16, uint8) bool {
	return true
}

// WithOwner returns a copy bound to owner.
func (p *ErpOfdmPhy) WithOwner(owner phy.Owner) phy.PhyEntity {
	bound := *p
	bound.owner = owner
	return &bound
}

func mustBeErpOfdm(op string, txVector phy.TxVector) {
	if m := txVector.Mode(); m == nil || m.Class() != phy.ModClassErpOfdm {
		panic(fmt.Sprintf("ErpOfdmPhy.%s: TxVector mode %s is not ERP-OFDM", op, m))
	}
}
