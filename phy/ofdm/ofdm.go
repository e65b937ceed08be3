// Package ofdm provides the OFDM symbol timing and rate formulas shared by
// the OFDM-derived PHY families (IEEE 802.11-2016 clause 17 and its ERP
// counterpart in clause 18).
//
// The functions are pure; they depend only on their arguments and on the
// read-only base catalog below.
package ofdm

import (
	"fmt"
	"math"
	"math/bits"
	"sort"
	"time"

	"github.com/wifi-sim/wifi-sim/phy"
)

const (
	// ServiceBits is the length of the SERVICE field prepended to the PSDU.
	ServiceBits = 16
	// TailBits terminates the convolutional encoder.
	TailBits = 6
	// SignalExtension is appended to ERP-OFDM PPDUs in the 2.4 GHz band.
	SignalExtension = 6 * time.Microsecond
)

// baseCatalog lists the (code rate, constellation size) pairs of the eight
// OFDM rates in ascending order. Rates per channel width derive from it.
var baseCatalog = []struct {
	codeRate          phy.CodeRate
	constellationSize uint16
}{
	{phy.CodeRate1_2, 2},
	{phy.CodeRate3_4, 2},
	{phy.CodeRate1_2, 4},
	{phy.CodeRate3_4, 4},
	{phy.CodeRate1_2, 16},
	{phy.CodeRate3_4, 16},
	{phy.CodeRate2_3, 64},
	{phy.CodeRate3_4, 64},
}

// supportedWidths are the channel widths (MHz) clause 17 defines.
var supportedWidths = []uint16{20, 10, 5}

// SymbolDuration returns the OFDM symbol duration including the guard
// interval: 4 µs at 20 MHz, doubled at 10 MHz and quadrupled at 5 MHz.
func SymbolDuration(channelWidth uint16) time.Duration {
	symbol := 4 * time.Microsecond
	switch channelWidth {
	case 10:
		return 2 * symbol
	case 5:
		return 4 * symbol
	default:
		return symbol
	}
}

// UsableSubcarriers returns the number of data subcarriers.
func UsableSubcarriers(uint16) uint16 {
	return 48
}

// CalculateDataRate returns the data rate in bit/s. The guard interval and
// spatial stream count do not affect legacy OFDM rates.
func CalculateDataRate(codeRate phy.CodeRate, constellationSize uint16, channelWidth uint16,
	guardInterval uint16, nss uint8) uint64 {
	return calculateDataRate(SymbolDuration(channelWidth), UsableSubcarriers(channelWidth),
		bitsPerSubcarrier(constellationSize), codeRate.Ratio())
}

func calculateDataRate(symbolDuration time.Duration, usableSubcarriers uint16, bitsPerSubcarrier uint16, codingRate float64) uint64 {
	symbolRate := float64(time.Second) / float64(symbolDuration)
	return uint64(math.Ceil(symbolRate * float64(usableSubcarriers) * float64(bitsPerSubcarrier) * codingRate))
}

// CalculatePhyRate returns the gross PHY rate in bit/s, i.e. the data rate
// before coding overhead.
func CalculatePhyRate(codeRate phy.CodeRate, dataRate uint64) uint64 {
	return uint64(float64(dataRate) / codeRate.Ratio())
}

// NumDataBitsPerSymbol returns Ndbps for dataRate at channelWidth.
func NumDataBitsPerSymbol(dataRate uint64, channelWidth uint16) float64 {
	return float64(dataRate) * float64(SymbolDuration(channelWidth)) / float64(time.Second)
}

// PayloadDuration returns the airtime of a PSDU of size bytes: SERVICE, PSDU
// and tail bits rounded up to whole symbols.
func PayloadDuration(size uint32, dataRate uint64, channelWidth uint16) time.Duration {
	nDbps := NumDataBitsPerSymbol(dataRate, channelWidth)
	if nDbps <= 0 {
		panic(fmt.Sprintf("ofdm.PayloadDuration: non-positive bits per symbol for rate %d", dataRate))
	}
	numSymbols := math.Ceil(float64(ServiceBits+8*uint64(size)+TailBits) / nDbps)
	return time.Duration(numSymbols) * SymbolDuration(channelWidth)
}

// RatesBpsList returns the ordered data rates of the base catalog for each
// supported channel width.
func RatesBpsList() map[uint16][]uint64 {
	rates := make(map[uint16][]uint64, len(supportedWidths))
	for _, width := range supportedWidths {
		list := make([]uint64, 0, len(baseCatalog))
		for _, entry := range baseCatalog {
			list = append(list, CalculateDataRate(entry.codeRate, entry.constellationSize, width, 800, 1))
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		rates[width] = list
	}
	return rates
}

func bitsPerSubcarrier(constellationSize uint16) uint16 {
	if constellationSize == 0 || constellationSize&(constellationSize-1) != 0 {
		panic(fmt.Sprintf("ofdm: constellation size %d is not a power of two", constellationSize))
	}
	return uint16(bits.TrailingZeros16(constellationSize))
}
