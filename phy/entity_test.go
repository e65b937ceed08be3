package phy

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEntity is a minimal PhyEntity for exercising the table, environment
// and device without depending on a concrete family.
type stubEntity struct {
	class ModulationClass
	owner Owner
}

func (s *stubEntity) ModulationClass() ModulationClass                      { return s.class }
func (s *stubEntity) Modes() []*Mode                                        { return nil }
func (s *stubEntity) IsModeSupported(string) bool                           { return false }
func (s *stubEntity) HeaderMode(txVector TxVector) *Mode                    { return txVector.Mode() }
func (s *stubEntity) PreambleDuration(TxVector) time.Duration               { return 10 * time.Microsecond }
func (s *stubEntity) HeaderDuration(TxVector) time.Duration                 { return 2 * time.Microsecond }
func (s *stubEntity) IsModeAllowed(uint16, uint8) bool                      { return true }
func (s *stubEntity) DataRateFromTxVector(TxVector, uint16) (uint64, error) { return 1e6, nil }

func (s *stubEntity) PayloadDuration(size uint32, _ TxVector, _ Band) time.Duration {
	return time.Duration(size) * time.Microsecond
}

func (s *stubEntity) BuildPpdu(psdus PsduMap, txVector TxVector, d time.Duration) *Ppdu {
	return &Ppdu{UID: s.owner.ObtainNextUID(txVector), Modulation: s.class, Psdus: psdus,
		TxVector: txVector, Band: s.owner.Band(), Duration: d}
}

func (s *stubEntity) WithOwner(owner Owner) PhyEntity {
	bound := *s
	bound.owner = owner
	return &bound
}

func TestEntityTable_Register_DuplicateClassFails(t *testing.T) {
	table := NewEntityTable()
	require.NoError(t, table.Register(ModClassErpOfdm, &stubEntity{class: ModClassErpOfdm}))

	err := table.Register(ModClassErpOfdm, &stubEntity{class: ModClassErpOfdm})
	assert.Error(t, err)
	assert.Error(t, table.Register(ModClassOfdm, nil))
}

func TestEntityTable_Get(t *testing.T) {
	table := NewEntityTable()
	e := &stubEntity{class: ModClassHt}
	require.NoError(t, table.Register(ModClassHt, e))
	require.NoError(t, table.Register(ModClassDsss, &stubEntity{class: ModClassDsss}))

	got, err := table.Get(ModClassHt)
	require.NoError(t, err)
	assert.Same(t, e, got)

	_, err = table.Get(ModClassVht)
	assert.True(t, errors.Is(err, ErrLookup))
	assert.Equal(t, []ModulationClass{ModClassDsss, ModClassHt}, table.Classes())
}

func TestTxDuration_SumsPreambleHeaderPayload(t *testing.T) {
	e := &stubEntity{}
	assert.Equal(t, 112*time.Microsecond, TxDuration(e, 100, TxVector{}, Band5GHz))
}

func TestEnvironment_Bootstrap_RunsRegistrarsInOrder(t *testing.T) {
	env := NewEnvironment(nil)
	var order []string
	err := env.Bootstrap(
		func(env *Environment) error { order = append(order, "first"); return nil },
		func(env *Environment) error { order = append(order, "second"); return nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEnvironment_Bootstrap_StopsAtFirstError(t *testing.T) {
	env := NewEnvironment(nil)
	called := false
	err := env.Bootstrap(
		func(env *Environment) error { return errors.New("boom") },
		func(env *Environment) error { called = true; return nil },
	)
	assert.ErrorContains(t, err, "boom")
	assert.False(t, called)
}

func TestDevice_BindsEntitiesAndSharesUIDSequence(t *testing.T) {
	// GIVEN an environment with one registered entity and two devices in different bands
	env := NewEnvironment(nil)
	require.NoError(t, env.Entities.Register(ModClassErpOfdm, &stubEntity{class: ModClassErpOfdm}))
	mode := env.Modes.CreateMode("A", ModClassErpOfdm, true, CodeRate1_2, 2)
	txVector := NewTxVector(mode, 20, 800, 1)
	d1 := NewDevice(env, Band2_4GHz)
	d2 := NewDevice(env, Band5GHz)

	e1, err := d1.EntityFor(txVector)
	require.NoError(t, err)
	e2, err := d2.Entity(ModClassErpOfdm)
	require.NoError(t, err)

	// WHEN each device builds PPDUs
	p0 := e1.BuildPpdu(SingleUser(&Psdu{}), txVector, 0)
	p1 := e2.BuildPpdu(SingleUser(&Psdu{}), txVector, 0)
	p2 := e1.BuildPpdu(SingleUser(&Psdu{}), txVector, 0)

	// THEN each PPDU carries its device's band and UIDs increase across devices
	assert.Equal(t, Band2_4GHz, p0.Band)
	assert.Equal(t, Band5GHz, p1.Band)
	assert.Equal(t, []uint64{0, 1, 2}, []uint64{p0.UID, p1.UID, p2.UID})
	assert.Equal(t, uint64(3), env.PeekPpduUID())

	_, err = d1.Entity(ModClassHe)
	assert.True(t, errors.Is(err, ErrLookup))
	_, err = d1.EntityFor(TxVector{})
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestDevice_DataRate_DispatchesByModulationClass(t *testing.T) {
	env := NewEnvironment(nil)
	require.NoError(t, env.Entities.Register(ModClassErpOfdm, &stubEntity{class: ModClassErpOfdm}))
	mode := env.Modes.CreateMode("A", ModClassErpOfdm, true, CodeRate1_2, 2)
	d := NewDevice(env, Band2_4GHz)

	rate, err := d.DataRate(NewTxVector(mode, 20, 800, 1), SuStaID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1e6), rate)
}

func TestUIDSource_ConcurrentNextIsUnique(t *testing.T) {
	var src UIDSource
	const workers, perWorker = 8, 100

	var mu sync.Mutex
	seen := make(map[uint64]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				uid := src.Next()
				mu.Lock()
				seen[uid] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, uint64(workers*perWorker), src.Peek())
}

func TestNewDevice_BindsEveryRegisteredClass(t *testing.T) {
	// GIVEN three registered families
	env := NewEnvironment(nil)
	for _, class := range []ModulationClass{ModClassDsss, ModClassErpOfdm, ModClassHt} {
		require.NoError(t, env.Entities.Register(class, &stubEntity{class: class}))
	}

	// WHEN a device is created
	var d *Device
	require.NotPanics(t, func() { d = NewDevice(env, Band2_4GHz) })

	// THEN each family has an owner-bound copy distinct from the static entity
	for _, class := range env.Entities.Classes() {
		bound, err := d.Entity(class)
		require.NoError(t, err)
		static, err := env.Entities.Get(class)
		require.NoError(t, err)
		assert.NotSame(t, static, bound)
		assert.Same(t, d, bound.(*stubEntity).owner)
	}
}
