package erp

import (
	"fmt"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/ofdm"
)

type modulation struct {
	codeRate          phy.CodeRate
	constellationSize uint16
}

// lookupTable is the single source of truth for ERP-OFDM rate arithmetic.
var lookupTable = map[string]modulation{
	// Unique name           Code rate            Constellation size
	"ErpOfdmRate6Mbps":  {phy.CodeRate1_2, 2},
	"ErpOfdmRate9Mbps":  {phy.CodeRate3_4, 2},
	"ErpOfdmRate12Mbps": {phy.CodeRate1_2, 4},
	"ErpOfdmRate18Mbps": {phy.CodeRate3_4, 4},
	"ErpOfdmRate24Mbps": {phy.CodeRate1_2, 16},
	"ErpOfdmRate36Mbps": {phy.CodeRate3_4, 16},
	"ErpOfdmRate48Mbps": {phy.CodeRate2_3, 64},
	"ErpOfdmRate54Mbps": {phy.CodeRate3_4, 64},
}

func lookup(name string) (modulation, error) {
	m, ok := lookupTable[name]
	if !ok {
		return modulation{}, fmt.Errorf("%w: %q is not an ERP-OFDM mode", phy.ErrLookup, name)
	}
	return m, nil
}

// CodeRate returns the code rate of the named ERP-OFDM mode.
func CodeRate(name string) (phy.CodeRate, error) {
	m, err := lookup(name)
	if err != nil {
		return phy.CodeRateUndefined, err
	}
	return m.codeRate, nil
}

// ConstellationSize returns the constellation size of the named ERP-OFDM mode.
func ConstellationSize(name string) (uint16, error) {
	m, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return m.constellationSize, nil
}

// DataRate returns the data rate in bit/s of the named mode.
func DataRate(name string, channelWidth, guardInterval uint16, nss uint8) (uint64, error) {
	m, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return ofdm.CalculateDataRate(m.codeRate, m.constellationSize, channelWidth, guardInterval, nss), nil
}

// PhyRate returns the gross PHY rate in bit/s of the named mode.
func PhyRate(name string, channelWidth, guardInterval uint16, nss uint8) (uint64, error) {
	m, err := lookup(name)
	if err != nil {
		return 0, err
	}
	dataRate := ofdm.CalculateDataRate(m.codeRate, m.constellationSize, channelWidth, guardInterval, nss)
	return ofdm.CalculatePhyRate(m.codeRate, dataRate), nil
}

// SupportedBitRates returns the eight ERP-OFDM rates in ascending order.
func SupportedBitRates() []uint64 {
	return ofdm.RatesBpsList()[20]
}

// InitializeModes creates all eight ERP-OFDM modes in reg. Calling it again
// returns without creating anything new.
func InitializeModes(reg *phy.ModeRegistry) {
	for _, rate := range SupportedBitRates() {
		if _, err := ModeForRate(reg, rate); err != nil {
			panic(fmt.Sprintf("erp.InitializeModes: %v", err))
		}
	}
}

// ModeForRate returns the mode producing bps at 20 MHz.
func ModeForRate(reg *phy.ModeRegistry, bps uint64) (*phy.Mode, error) {
	switch bps {
	case 6000000:
		return Rate6Mbps(reg), nil
	case 9000000:
		return Rate9Mbps(reg), nil
	case 12000000:
		return Rate12Mbps(reg), nil
	case 18000000:
		return Rate18Mbps(reg), nil
	case 24000000:
		return Rate24Mbps(reg), nil
	case 36000000:
		return Rate36Mbps(reg), nil
	case 48000000:
		return Rate48Mbps(reg), nil
	case 54000000:
		return Rate54Mbps(reg), nil
	default:
		return nil, fmt.Errorf("%w: %w: inexistent rate (%d bps) requested for ERP-OFDM",
			phy.ErrConfiguration, phy.ErrLookup, bps)
	}
}

// createMode registers name with the code rate and constellation size from
// lookupTable. Mandatory modes form the basic rate set (6, 12 and 24 Mbps).
func createMode(reg *phy.ModeRegistry, name string, mandatory bool) *phy.Mode {
	m, err := lookup(name)
	if err != nil {
		panic(fmt.Sprintf("erp.createMode: %v", err))
	}
	return reg.CreateMode(name, phy.ModClassErpOfdm, mandatory, m.codeRate, m.constellationSize)
}

func Rate6Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate6Mbps", true)
}

func Rate9Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate9Mbps", false)
}

func Rate12Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate12Mbps", true)
}

func Rate18Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate18Mbps", false)
}

func Rate24Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate24Mbps", true)
}

func Rate36Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate36Mbps", false)
}

func Rate48Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate48Mbps", false)
}

func Rate54Mbps(reg *phy.ModeRegistry) *phy.Mode {
	return createMode(reg, "ErpOfdmRate54Mbps", false)
}
