// Package testutil provides shared test infrastructure for the phy packages.
// It loads the golden rate dataset published for 802.11 OFDM and ERP-OFDM.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/erp_golden.json.
type GoldenDataset struct {
	Rates []GoldenRate `json:"rates"`
}

// GoldenRate is the published data and PHY rate of one mode at one channel width.
type GoldenRate struct {
	Mode         string `json:"mode"`
	ChannelWidth uint16 `json:"channel_width"`
	DataRate     uint64 `json:"data_rate"`
	PhyRate      uint64 `json:"phy_rate"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: phy/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "erp_golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Rates) == 0 {
		t.Fatal("golden dataset has no rates")
	}
	return &dataset
}

// ForWidth returns the golden rows for one channel width, in file order.
func (d *GoldenDataset) ForWidth(width uint16) []GoldenRate {
	var out []GoldenRate
	for _, r := range d.Rates {
		if r.ChannelWidth == width {
			out = append(out, r)
		}
	}
	return out
}
