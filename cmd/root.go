package cmd

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/erp"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wifi-sim",
	Short: "ERP-OFDM PHY rate, timing and airtime calculator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// bootstrap builds the PHY environment with its own metrics registry and
// registers every PHY family, in order.
func bootstrap() (*phy.Environment, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	collector, err := phy.NewCollector(reg)
	if err != nil {
		logrus.Fatalf("failed to register PHY metrics: %v", err)
	}
	env := phy.NewEnvironment(collector)
	if err := env.Bootstrap(erp.Register); err != nil {
		logrus.Fatalf("PHY bootstrap failed: %v", err)
	}
	return env, reg
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
