package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wifi-sim/wifi-sim/sim"
	"github.com/wifi-sim/wifi-sim/sim/trace"
)

var (
	configPath    string // YAML workload file
	seed          int64  // Seed for mode and payload draws
	transmissions int    // Number of PPDUs
	band          string // Operating band
	traceLevel    string // Trace verbosity
)

// runCmd executes the airtime simulation
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ERP-OFDM airtime simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sim.DefaultWorkloadConfig()
		if configPath != "" {
			loaded, err := sim.LoadWorkloadConfig(configPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			cfg = loaded
		}
		// Flags override the file only when set explicitly.
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if cmd.Flags().Changed("transmissions") {
			cfg.Transmissions = transmissions
		}
		if cmd.Flags().Changed("band") {
			cfg.Band = band
		}
		if cmd.Flags().Changed("trace") {
			cfg.Trace = traceLevel
		}
		if !trace.IsValidTraceLevel(cfg.Trace) {
			logrus.Fatalf("Invalid trace level: %s", cfg.Trace)
		}

		env, reg := bootstrap()
		s, err := sim.NewSimulator(cfg, env)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		startTime := time.Now()
		s.Run()
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))

		out := cmd.OutOrStdout()
		s.Metrics.Print(out)
		if s.Trace.Enabled() {
			printTraceSummary(out, trace.Summarize(s.Trace))
		}
		printMetricFamilies(out, reg)
	},
}

func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "PPDUs                : %d\n", summary.TotalTransmissions)
	fmt.Fprintf(w, "Mean Data Rate       : %.1f Mbps\n", summary.MeanDataRate/1e6)
	fmt.Fprintf(w, "Longest PPDU         : %v\n", summary.MaxDuration)
	modes := make([]string, 0, len(summary.ModeDistribution))
	for m := range summary.ModeDistribution {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	for _, m := range modes {
		fmt.Fprintf(w, "  %-20s %d\n", m, summary.ModeDistribution[m])
	}
}

func printMetricFamilies(w io.Writer, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logrus.Warnf("failed to gather metrics: %v", err)
		return
	}
	fmt.Fprintln(w, "=== PHY Metrics ===")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, value)
		}
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML workload file (defaults used when empty)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for mode and payload draws")
	runCmd.Flags().IntVar(&transmissions, "transmissions", 100, "Number of PPDUs to transmit")
	runCmd.Flags().StringVar(&band, "band", "2.4GHz", "Operating band (2.4GHz, 5GHz, 6GHz)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, ppdus)")
	rootCmd.AddCommand(runCmd)
}
