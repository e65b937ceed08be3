package erp

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wifi-sim/wifi-sim/phy"
)

// Register creates every ERP-OFDM mode in env and registers the static
// ERP-OFDM entity under phy.ModClassErpOfdm. Called once during bootstrap.
func Register(env *phy.Environment) error {
	InitializeModes(env.Modes)
	if err := env.Entities.Register(phy.ModClassErpOfdm, New(env.Modes)); err != nil {
		return fmt.Errorf("erp: %w", err)
	}
	logrus.Infof("registered %s PHY entity with %d modes", phy.ModClassErpOfdm, len(SupportedBitRates()))
	return nil
}
