package phy

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Environment is the bootstrap context of a simulation run. It owns the mode
// registry, the entity table and the PPDU UID sequence, and is passed by
// reference to everything that needs them.
//
// Thread-safety: the registry and UID source are safe for concurrent use; the
// entity table is populated during bootstrap and read-only afterwards.
type Environment struct {
	RunID    uuid.UUID
	Modes    *ModeRegistry
	Entities *EntityTable
	Metrics  *Collector // nil disables metrics

	uids UIDSource
}

// NewEnvironment creates an empty environment. collector may be nil.
func NewEnvironment(collector *Collector) *Environment {
	return &Environment{
		RunID:    uuid.New(),
		Modes:    NewModeRegistry(),
		Entities: NewEntityTable(),
		Metrics:  collector,
	}
}

// Registrar registers one PHY family with an environment.
type Registrar func(env *Environment) error

// Bootstrap runs registrars in order, stopping at the first failure.
func (env *Environment) Bootstrap(registrars ...Registrar) error {
	for i, register := range registrars {
		if err := register(env); err != nil {
			return fmt.Errorf("bootstrap step %d: %w", i, err)
		}
	}
	env.Metrics.SetModesRegistered(env.Modes.Len())
	logrus.WithField("run", env.RunID).Infof("PHY bootstrap complete: %d entities, %d modes",
		len(env.Entities.Classes()), env.Modes.Len())
	return nil
}

// NextPpduUID consumes one identifier from the run-wide PPDU sequence.
func (env *Environment) NextPpduUID() uint64 {
	return env.uids.Next()
}

// PeekPpduUID returns the next identifier without consuming it.
func (env *Environment) PeekPpduUID() uint64 {
	return env.uids.Peek()
}

// Device is an owning PHY: it operates in one band and holds its own bound
// copy of every entity registered in the environment.
type Device struct {
	env      *Environment
	band     Band
	entities map[ModulationClass]PhyEntity
}

// NewDevice binds every registered entity to a new device operating in band.
func NewDevice(env *Environment, band Band) *Device {
	d := &Device{
		env:      env,
		band:     band,
		entities: make(map[ModulationClass]PhyEntity),
	}
	for _, class := range env.Entities.Classes() {
		entity, err := env.Entities.Get(class)
		if err != nil {
			// Classes and Get read the same table; a miss means it was mutated mid-bind.
			panic(fmt.Sprintf("NewDevice: %v", err))
		}
		d.entities[class] = entity.WithOwner(d)
	}
	return d
}

// Band implements Owner.
func (d *Device) Band() Band { return d.band }

// ObtainNextUID implements Owner.
func (d *Device) ObtainNextUID(txVector TxVector) uint64 {
	uid := d.env.NextPpduUID()
	if m := txVector.Mode(); m != nil {
		d.env.Metrics.IncPpdusBuilt(m.Class())
	}
	return uid
}

// Entity returns the device's bound entity for class.
func (d *Device) Entity(class ModulationClass) (PhyEntity, error) {
	e, ok := d.entities[class]
	if !ok {
		return nil, fmt.Errorf("%w: device has no PHY entity for %s", ErrLookup, class)
	}
	return e, nil
}

// EntityFor returns the bound entity matching the primary mode of txVector.
func (d *Device) EntityFor(txVector TxVector) (PhyEntity, error) {
	if txVector.Mode() == nil {
		return nil, fmt.Errorf("%w: TxVector has no mode", ErrConfiguration)
	}
	return d.Entity(txVector.Mode().Class())
}

// DataRate returns the data rate of txVector for staID, dispatched to the
// entity of the TxVector's modulation class.
func (d *Device) DataRate(txVector TxVector, staID uint16) (uint64, error) {
	e, err := d.EntityFor(txVector)
	if err != nil {
		return 0, err
	}
	return e.DataRateFromTxVector(txVector, staID)
}
