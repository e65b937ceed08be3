package phy

import (
	"fmt"
	"sort"
	"time"
)

// Owner is the PHY device a bound entity belongs to. Entities read the band
// from it and obtain PPDU identifiers through it.
type Owner interface {
	Band() Band
	ObtainNextUID(txVector TxVector) uint64
}

// PhyEntity is the capability set every waveform family implements. Callers
// work against this interface without knowing the concrete family.
type PhyEntity interface {
	// ModulationClass returns the family this entity implements.
	ModulationClass() ModulationClass
	// Modes returns the supported modes in ascending rate order.
	Modes() []*Mode
	// IsModeSupported reports whether the named mode belongs to this entity.
	IsModeSupported(name string) bool
	// HeaderMode returns the mode used to encode the PHY header.
	HeaderMode(txVector TxVector) *Mode
	PreambleDuration(txVector TxVector) time.Duration
	HeaderDuration(txVector TxVector) time.Duration
	// PayloadDuration returns the airtime of a PSDU of size bytes.
	PayloadDuration(size uint32, txVector TxVector, band Band) time.Duration
	// BuildPpdu packages psdus into a single PPDU stamped with the owner's
	// band and a fresh UID.
	BuildPpdu(psdus PsduMap, txVector TxVector, ppduDuration time.Duration) *Ppdu
	// DataRateFromTxVector returns the data rate in bit/s for staID.
	DataRateFromTxVector(txVector TxVector, staID uint16) (uint64, error)
	IsModeAllowed(channelWidth uint16, nss uint8) bool
	// WithOwner returns a copy of the entity bound to owner.
	WithOwner(owner Owner) PhyEntity
}

// TxDuration returns the full airtime of a PPDU carrying size bytes: preamble,
// header and payload.
func TxDuration(entity PhyEntity, size uint32, txVector TxVector, band Band) time.Duration {
	return entity.PreambleDuration(txVector) +
		entity.HeaderDuration(txVector) +
		entity.PayloadDuration(size, txVector, band)
}

// EntityTable maps modulation classes to their PHY entity. Each class is
// registered once during bootstrap.
type EntityTable struct {
	entities map[ModulationClass]PhyEntity
}

// NewEntityTable creates an empty table.
func NewEntityTable() *EntityTable {
	return &EntityTable{entities: make(map[ModulationClass]PhyEntity)}
}

// Register adds entity under class. Registering a class twice is an error.
func (t *EntityTable) Register(class ModulationClass, entity PhyEntity) error {
	if entity == nil {
		return fmt.Errorf("register %s: nil entity", class)
	}
	if _, exists := t.entities[class]; exists {
		return fmt.Errorf("register %s: entity already registered", class)
	}
	t.entities[class] = entity
	return nil
}

// Get returns the entity registered for class.
func (t *EntityTable) Get(class ModulationClass) (PhyEntity, error) {
	e, ok := t.entities[class]
	if !ok {
		return nil, fmt.Errorf("%w: no PHY entity registered for %s", ErrLookup, class)
	}
	return e, nil
}

// Classes returns the registered classes in ascending order.
func (t *EntityTable) Classes() []ModulationClass {
	classes := make([]ModulationClass, 0, len(t.entities))
	for c := range t.entities {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}
