package phy

import "fmt"

// Band is the frequency band a PHY operates in.
type Band int

const (
	BandUnspecified Band = iota
	Band2_4GHz
	Band5GHz
	Band6GHz
)

var bandNames = map[Band]string{
	BandUnspecified: "unspecified",
	Band2_4GHz:      "2.4GHz",
	Band5GHz:        "5GHz",
	Band6GHz:        "6GHz",
}

func (b Band) String() string {
	if s, ok := bandNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// ParseBand maps a band name ("2.4GHz", "5GHz", "6GHz") to a Band.
func ParseBand(s string) (Band, error) {
	for b, name := range bandNames {
		if b != BandUnspecified && name == s {
			return b, nil
		}
	}
	return BandUnspecified, fmt.Errorf("%w: unknown band %q", ErrLookup, s)
}

// TxVector describes one transmission attempt. It is a value type; callers
// treat it as immutable for the duration of any calculation.
type TxVector struct {
	mode          *Mode
	channelWidth  uint16 // MHz
	guardInterval uint16 // ns
	nss           uint8
	staModes      map[uint16]*Mode // optional per-STA overrides (nil for single-user)
}

// NewTxVector builds a single-user TxVector.
func NewTxVector(mode *Mode, channelWidth, guardInterval uint16, nss uint8) TxVector {
	return TxVector{
		mode:          mode,
		channelWidth:  channelWidth,
		guardInterval: guardInterval,
		nss:           nss,
	}
}

// WithStaMode returns a copy of v that uses mode for the given STA-ID.
func (v TxVector) WithStaMode(staID uint16, mode *Mode) TxVector {
	staModes := make(map[uint16]*Mode, len(v.staModes)+1)
	for id, m := range v.staModes {
		staModes[id] = m
	}
	staModes[staID] = mode
	v.staModes = staModes
	return v
}

// Mode returns the primary mode.
func (v TxVector) Mode() *Mode { return v.mode }

// ModeFor returns the mode used for staID, falling back to the primary mode.
func (v TxVector) ModeFor(staID uint16) *Mode {
	if m, ok := v.staModes[staID]; ok {
		return m
	}
	return v.mode
}

func (v TxVector) ChannelWidth() uint16  { return v.channelWidth }
func (v TxVector) GuardInterval() uint16 { return v.guardInterval }
func (v TxVector) Nss() uint8            { return v.nss }

func (v TxVector) String() string {
	return fmt.Sprintf("TxVector: (mode: %s, width: %dMHz, gi: %dns, nss: %d)",
		v.mode, v.channelWidth, v.guardInterval, v.nss)
}
