package phy

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/sirupsen/logrus"
)

// ModulationClass identifies the PHY family a mode belongs to.
type ModulationClass int

const (
	ModClassUnknown ModulationClass = iota
	ModClassDsss
	ModClassHrDsss
	ModClassErpOfdm
	ModClassOfdm
	ModClassHt
	ModClassVht
	ModClassHe
)

var modClassNames = map[ModulationClass]string{
	ModClassUnknown: "Unknown",
	ModClassDsss:    "DSSS",
	ModClassHrDsss:  "HR/DSSS",
	ModClassErpOfdm: "ERP-OFDM",
	ModClassOfdm:    "OFDM",
	ModClassHt:      "HT",
	ModClassVht:     "VHT",
	ModClassHe:      "HE",
}

func (c ModulationClass) String() string {
	if s, ok := modClassNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ModulationClass(%d)", int(c))
}

// CodeRate is the ratio of information bits to coded bits.
type CodeRate int

const (
	CodeRateUndefined CodeRate = iota
	CodeRate1_2
	CodeRate2_3
	CodeRate3_4
	CodeRate5_6
)

// Ratio returns the code rate as a fraction.
// Panics on CodeRateUndefined: rate arithmetic on an undefined code rate is a programming error.
func (r CodeRate) Ratio() float64 {
	switch r {
	case CodeRate1_2:
		return 1.0 / 2.0
	case CodeRate2_3:
		return 2.0 / 3.0
	case CodeRate3_4:
		return 3.0 / 4.0
	case CodeRate5_6:
		return 5.0 / 6.0
	default:
		panic(fmt.Sprintf("CodeRate.Ratio: undefined code rate %d", int(r)))
	}
}

func (r CodeRate) String() string {
	switch r {
	case CodeRate1_2:
		return "1/2"
	case CodeRate2_3:
		return "2/3"
	case CodeRate3_4:
		return "3/4"
	case CodeRate5_6:
		return "5/6"
	default:
		return "undefined"
	}
}

// Mode is a named modulation-and-coding scheme. Modes are created through a
// ModeRegistry and never mutated afterwards; the registry hands out the same
// *Mode for the same name, so pointer equality is mode equality.
type Mode struct {
	uid               int
	name              string
	class             ModulationClass
	mandatory         bool
	codeRate          CodeRate
	constellationSize uint16
	shortPreamble     bool
}

func (m *Mode) UID() int                    { return m.uid }
func (m *Mode) Name() string                { return m.name }
func (m *Mode) Class() ModulationClass      { return m.class }
func (m *Mode) IsMandatory() bool           { return m.mandatory }
func (m *Mode) CodeRate() CodeRate          { return m.codeRate }
func (m *Mode) ConstellationSize() uint16   { return m.constellationSize }
func (m *Mode) SupportsShortPreamble() bool { return m.shortPreamble }

// BitsPerSymbol returns log2 of the constellation size.
func (m *Mode) BitsPerSymbol() int {
	return bits.Len16(m.constellationSize) - 1
}

func (m *Mode) String() string {
	if m == nil {
		return "<nil mode>"
	}
	return m.name
}

// ModeOption customizes a mode at creation time.
type ModeOption func(*Mode)

// WithShortPreamble marks the mode as usable with a short PLCP preamble.
func WithShortPreamble() ModeOption {
	return func(m *Mode) { m.shortPreamble = true }
}

// ModeRegistry holds every mode created during a run, in creation order.
// It is owned by the bootstrap Environment and shared by reference with all
// PHY entities. Entries are append-only.
type ModeRegistry struct {
	mu     sync.Mutex
	byName map[string]*Mode
	order  []*Mode
}

// NewModeRegistry creates an empty registry.
func NewModeRegistry() *ModeRegistry {
	return &ModeRegistry{
		byName: make(map[string]*Mode),
		order:  make([]*Mode, 0),
	}
}

// CreateMode returns the mode registered under name, creating it on first use.
// Creating an existing name with different attributes panics: mode names are
// globally unique.
func (r *ModeRegistry) CreateMode(name string, class ModulationClass, mandatory bool,
	codeRate CodeRate, constellationSize uint16, opts ...ModeOption) *Mode {
	candidate := &Mode{
		name:              name,
		class:             class,
		mandatory:         mandatory,
		codeRate:          codeRate,
		constellationSize: constellationSize,
	}
	for _, opt := range opts {
		opt(candidate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[name]; ok {
		candidate.uid = existing.uid
		if *candidate != *existing {
			panic(fmt.Sprintf("ModeRegistry.CreateMode: mode %q already registered with different attributes", name))
		}
		return existing
	}
	candidate.uid = len(r.order)
	r.byName[name] = candidate
	r.order = append(r.order, candidate)
	logrus.Debugf("registered mode %s (uid=%d, class=%s)", name, candidate.uid, class)
	return candidate
}

// Lookup returns the mode registered under name.
func (r *ModeRegistry) Lookup(name string) (*Mode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: mode %q is not registered", ErrLookup, name)
	}
	return m, nil
}

// Modes returns all registered modes in creation order.
func (r *ModeRegistry) Modes() []*Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Mode, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered modes.
func (r *ModeRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}
