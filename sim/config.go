package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wifi-sim/wifi-sim/phy"
	"github.com/wifi-sim/wifi-sim/phy/erp"
)

// PayloadConfig bounds the PSDU payload sizes drawn for each transmission.
type PayloadConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// WorkloadConfig describes a back-to-back transmission workload, loadable
// from a YAML scenario file.
type WorkloadConfig struct {
	Seed              int64         `yaml:"seed"`
	HorizonUs         int64         `yaml:"horizon_us"`          // 0 = unbounded
	Band              string        `yaml:"band"`                // "2.4GHz", "5GHz" or "6GHz"
	Transmissions     int           `yaml:"transmissions"`       // PPDUs to send
	ChannelWidth      uint16        `yaml:"channel_width"`       // MHz
	GuardIntervalNs   uint16        `yaml:"guard_interval_ns"`   // ns
	Nss               uint8         `yaml:"nss"`                 // spatial streams
	RatesMbps         []float64     `yaml:"rates_mbps"`          // candidate ERP-OFDM rates, drawn uniformly
	Payload           PayloadConfig `yaml:"payload_bytes"`       // payload size bounds (FCS excluded)
	InterframeSpaceUs int64         `yaml:"interframe_space_us"` // idle time between PPDUs
	Trace             string        `yaml:"trace"`               // "none" or "ppdus"
}

// DefaultWorkloadConfig returns the workload used when no scenario file is given:
// 100 PPDUs over every ERP-OFDM rate on a 20 MHz 2.4 GHz channel.
func DefaultWorkloadConfig() WorkloadConfig {
	rates := make([]float64, 0, 8)
	for _, bps := range erp.SupportedBitRates() {
		rates = append(rates, float64(bps)/1e6)
	}
	return WorkloadConfig{
		Seed:              42,
		Band:              "2.4GHz",
		Transmissions:     100,
		ChannelWidth:      20,
		GuardIntervalNs:   800,
		Nss:               1,
		RatesMbps:         rates,
		Payload:           PayloadConfig{Min: 64, Max: 1500},
		InterframeSpaceUs: 10,
		Trace:             "none",
	}
}

// LoadWorkloadConfig reads a YAML scenario file over DefaultWorkloadConfig.
// Uses strict field checking: unknown keys are errors.
func LoadWorkloadConfig(path string) (WorkloadConfig, error) {
	cfg := DefaultWorkloadConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading workload config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing workload config: %w", err)
	}
	return cfg, nil
}

// Validate checks the workload against the ERP-OFDM catalog and parameter ranges.
func (c *WorkloadConfig) Validate() error {
	if _, err := phy.ParseBand(c.Band); err != nil {
		return fmt.Errorf("band: %w", err)
	}
	if c.Transmissions < 0 {
		return fmt.Errorf("transmissions must be non-negative, got %d", c.Transmissions)
	}
	if c.HorizonUs < 0 || c.HorizonUs > maxDurationUs {
		return fmt.Errorf("horizon_us must be in [0, %d], got %d", maxDurationUs, c.HorizonUs)
	}
	if c.InterframeSpaceUs < 0 || c.InterframeSpaceUs > maxDurationUs {
		return fmt.Errorf("interframe_space_us must be in [0, %d], got %d", maxDurationUs, c.InterframeSpaceUs)
	}
	if c.ChannelWidth != 20 {
		return fmt.Errorf("channel_width must be 20 MHz for ERP-OFDM, got %d", c.ChannelWidth)
	}
	if c.Nss == 0 {
		return fmt.Errorf("nss must be positive")
	}
	if len(c.RatesMbps) == 0 {
		return fmt.Errorf("rates_mbps must list at least one rate")
	}
	supported := erp.SupportedBitRates()
	for _, r := range c.RatesMbps {
		if !slices.Contains(supported, rateBps(r)) {
			return fmt.Errorf("rates_mbps: %v Mbps is not an ERP-OFDM rate", r)
		}
	}
	if c.Payload.Min < 0 || c.Payload.Max < c.Payload.Min {
		return fmt.Errorf("payload_bytes: need 0 <= min <= max, got min=%d max=%d", c.Payload.Min, c.Payload.Max)
	}
	if c.Payload.Max > erp.MaxPsduSize-phy.FcsSize {
		return fmt.Errorf("payload_bytes: max %d plus the %d-byte FCS exceeds the %d-byte PSDU limit",
			c.Payload.Max, phy.FcsSize, erp.MaxPsduSize)
	}
	if c.Trace != "" && c.Trace != "none" && c.Trace != "ppdus" {
		return fmt.Errorf("unknown trace level %q", c.Trace)
	}
	return nil
}

// maxDurationUs is the largest microsecond count representable as a time.Duration.
const maxDurationUs = math.MaxInt64 / int64(time.Microsecond)

func rateBps(mbps float64) uint64 {
	return uint64(math.Round(mbps * 1e6))
}
