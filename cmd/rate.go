package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/erp"
)

var (
	rateMode  string // Unique mode name
	rateWidth uint16 // Channel width (MHz)
	rateGI    uint16 // Guard interval (ns)
	rateNss   uint8  // Spatial streams
	rateSize  uint32 // PSDU size for the airtime line (0 = skip)
	rateBand  string // Band for the airtime line
)

// rateCmd computes the rates and timings of one mode
var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Compute the data rate, PHY rate and PPDU timings of an ERP-OFDM mode",
	Run: func(cmd *cobra.Command, args []string) {
		dataRate, err := erp.DataRate(rateMode, rateWidth, rateGI, rateNss)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		phyRate, err := erp.PhyRate(rateMode, rateWidth, rateGI, rateNss)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		env, _ := bootstrap()
		mode, err := env.Modes.Lookup(rateMode)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		entity, err := env.Entities.Get(mode.Class())
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		txVector := phy.NewTxVector(mode, rateWidth, rateGI, rateNss)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Mode              : %s\n", mode)
		fmt.Fprintf(out, "Data Rate         : %d bps\n", dataRate)
		fmt.Fprintf(out, "PHY Rate          : %d bps\n", phyRate)
		fmt.Fprintf(out, "Header Mode       : %s\n", entity.HeaderMode(txVector))
		fmt.Fprintf(out, "Preamble Duration : %v\n", entity.PreambleDuration(txVector))
		fmt.Fprintf(out, "Header Duration   : %v\n", entity.HeaderDuration(txVector))
		if rateSize > 0 {
			band, err := phy.ParseBand(rateBand)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			fmt.Fprintf(out, "Tx Duration       : %v (%d bytes, %s)\n",
				phy.TxDuration(entity, rateSize, txVector, band), rateSize, band)
		}
	},
}

func init() {
	rateCmd.Flags().StringVar(&rateMode, "mode", "ErpOfdmRate54Mbps", "Unique mode name")
	rateCmd.Flags().Uint16Var(&rateWidth, "width", 20, "Channel width in MHz")
	rateCmd.Flags().Uint16Var(&rateGI, "gi", 800, "Guard interval in ns")
	rateCmd.Flags().Uint8Var(&rateNss, "nss", 1, "Number of spatial streams")
	rateCmd.Flags().Uint32Var(&rateSize, "size", 0, "PSDU size in bytes for the airtime line (0 = skip)")
	rateCmd.Flags().StringVar(&rateBand, "band", "2.4GHz", "Band for the airtime line")
	rootCmd.AddCommand(rateCmd)
}
