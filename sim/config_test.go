package sim

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultWorkloadConfig_IsValid(t *testing.T) {
	cfg := DefaultWorkloadConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []float64{6, 9, 12, 18, 24, 36, 48, 54}, cfg.RatesMbps)
}

func TestWorkloadConfig_Validate_AcceptsLimits(t *testing.T) {
	// GIVEN the largest payload and horizon that still fit
	cfg := DefaultWorkloadConfig()
	cfg.Payload = PayloadConfig{Min: 4091, Max: 4091}
	cfg.HorizonUs = maxDurationUs
	cfg.InterframeSpaceUs = 0

	// WHEN validated
	// THEN the workload is accepted
	assert.NoError(t, cfg.Validate())
}

func TestLoadWorkloadConfig_OverridesDefaults(t *testing.T) {
	// GIVEN a file setting only some fields
	path := writeConfig(t, `
seed: 7
band: 5GHz
rates_mbps: [6, 54]
payload_bytes:
  min: 100
  max: 200
`)

	// WHEN loaded
	cfg, err := LoadWorkloadConfig(path)

	// THEN set fields are taken from the file and the rest keep their defaults
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "5GHz", cfg.Band)
	assert.Equal(t, []float64{6, 54}, cfg.RatesMbps)
	assert.Equal(t, PayloadConfig{Min: 100, Max: 200}, cfg.Payload)
	assert.Equal(t, 100, cfg.Transmissions)
	assert.Equal(t, uint16(20), cfg.ChannelWidth)
	require.NoError(t, cfg.Validate())
}

func TestLoadWorkloadConfig_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, "seed: 1\nmcs: 7\n")

	_, err := LoadWorkloadConfig(path)
	assert.ErrorContains(t, err, "parsing workload config")
}

func TestLoadWorkloadConfig_MissingFile(t *testing.T) {
	_, err := LoadWorkloadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "reading workload config")
}

func TestWorkloadConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WorkloadConfig)
		errMsg string
	}{
		{"unknown band", func(c *WorkloadConfig) { c.Band = "60GHz" }, "band"},
		{"negative transmissions", func(c *WorkloadConfig) { c.Transmissions = -1 }, "transmissions"},
		{"negative horizon", func(c *WorkloadConfig) { c.HorizonUs = -5 }, "horizon_us"},
		{"negative ifs", func(c *WorkloadConfig) { c.InterframeSpaceUs = -1 }, "interframe_space_us"},
		{"40 MHz", func(c *WorkloadConfig) { c.ChannelWidth = 40 }, "channel_width"},
		{"zero nss", func(c *WorkloadConfig) { c.Nss = 0 }, "nss"},
		{"no rates", func(c *WorkloadConfig) { c.RatesMbps = nil }, "rates_mbps"},
		{"11 Mbps is DSSS", func(c *WorkloadConfig) { c.RatesMbps = []float64{6, 11} }, "11 Mbps"},
		{"max below min", func(c *WorkloadConfig) { c.Payload = PayloadConfig{Min: 10, Max: 5} }, "payload_bytes"},
		{"max payload overflows draw", func(c *WorkloadConfig) { c.Payload = PayloadConfig{Min: 0, Max: math.MaxInt} }, "PSDU limit"},
		{"payload above PSDU limit", func(c *WorkloadConfig) { c.Payload = PayloadConfig{Min: 100000, Max: 100000} }, "PSDU limit"},
		{"payload plus FCS one over limit", func(c *WorkloadConfig) { c.Payload = PayloadConfig{Min: 0, Max: 4092} }, "PSDU limit"},
		{"horizon overflows duration", func(c *WorkloadConfig) { c.HorizonUs = math.MaxInt64 / 100 }, "horizon_us"},
		{"ifs overflows duration", func(c *WorkloadConfig) { c.InterframeSpaceUs = math.MaxInt64 }, "interframe_space_us"},
		{"bad trace level", func(c *WorkloadConfig) { c.Trace = "verbose" }, "trace level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWorkloadConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
