package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/erp"
)

var modesWidth uint16 // Channel width used for the rate columns

// modesCmd lists the ERP-OFDM catalog
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the ERP-OFDM modes with their data and PHY rates",
	Run: func(cmd *cobra.Command, args []string) {
		env, _ := bootstrap()
		entity, err := env.Entities.Get(phy.ModClassErpOfdm)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MODE\tCODE RATE\tCONSTELLATION\tMANDATORY\tDATA RATE (bps)\tPHY RATE (bps)")
		for _, m := range entity.Modes() {
			dataRate, err := erp.DataRate(m.Name(), modesWidth, 800, 1)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			phyRate, err := erp.PhyRate(m.Name(), modesWidth, 800, 1)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%d\t%d\n",
				m.Name(), m.CodeRate(), m.ConstellationSize(), m.IsMandatory(), dataRate, phyRate)
		}
		if err := w.Flush(); err != nil {
			logrus.Fatalf("failed to write modes table: %v", err)
		}
	},
}

func init() {
	modesCmd.Flags().Uint16Var(&modesWidth, "width", 20, "Channel width in MHz (20, 10 or 5)")
	rootCmd.AddCommand(modesCmd)
}
