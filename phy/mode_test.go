package phy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeRegistry_CreateMode_SameNameReturnsSameInstance(t *testing.T) {
	// GIVEN a registry with one mode
	reg := NewModeRegistry()
	first := reg.CreateMode("TestRate6Mbps", ModClassErpOfdm, true, CodeRate1_2, 2)

	// WHEN the same name is created again with the same attributes
	second := reg.CreateMode("TestRate6Mbps", ModClassErpOfdm, true, CodeRate1_2, 2)

	// THEN the same instance is returned and nothing new is registered
	assert.Same(t, first, second)
	assert.Equal(t, 1, reg.Len())
}

func TestModeRegistry_CreateMode_ConflictingAttributesPanics(t *testing.T) {
	reg := NewModeRegistry()
	reg.CreateMode("TestRate6Mbps", ModClassErpOfdm, true, CodeRate1_2, 2)

	assert.Panics(t, func() {
		reg.CreateMode("TestRate6Mbps", ModClassErpOfdm, true, CodeRate3_4, 2)
	})
}

func TestModeRegistry_Modes_CreationOrderAndUIDs(t *testing.T) {
	reg := NewModeRegistry()
	a := reg.CreateMode("A", ModClassOfdm, true, CodeRate1_2, 2)
	b := reg.CreateMode("B", ModClassOfdm, false, CodeRate3_4, 4)

	modes := reg.Modes()
	require.Len(t, modes, 2)
	assert.Same(t, a, modes[0])
	assert.Same(t, b, modes[1])
	assert.Equal(t, 0, a.UID())
	assert.Equal(t, 1, b.UID())

	// Modes returns a copy; mutating it must not affect the registry.
	modes[0] = nil
	assert.Same(t, a, reg.Modes()[0])
}

func TestModeRegistry_Lookup(t *testing.T) {
	reg := NewModeRegistry()
	m := reg.CreateMode("A", ModClassOfdm, true, CodeRate1_2, 2, WithShortPreamble())

	got, err := reg.Lookup("A")
	require.NoError(t, err)
	assert.Same(t, m, got)
	assert.True(t, got.SupportsShortPreamble())

	_, err = reg.Lookup("missing")
	assert.True(t, errors.Is(err, ErrLookup), "expected ErrLookup, got %v", err)
}

func TestMode_Accessors(t *testing.T) {
	reg := NewModeRegistry()
	m := reg.CreateMode("ErpOfdmRate54Mbps", ModClassErpOfdm, false, CodeRate3_4, 64)

	assert.Equal(t, "ErpOfdmRate54Mbps", m.Name())
	assert.Equal(t, "ErpOfdmRate54Mbps", m.String())
	assert.Equal(t, ModClassErpOfdm, m.Class())
	assert.False(t, m.IsMandatory())
	assert.Equal(t, CodeRate3_4, m.CodeRate())
	assert.Equal(t, uint16(64), m.ConstellationSize())
	assert.Equal(t, 6, m.BitsPerSymbol())
	assert.False(t, m.SupportsShortPreamble())
}

func TestCodeRate_Ratio(t *testing.T) {
	tests := []struct {
		rate CodeRate
		want float64
		str  string
	}{
		{CodeRate1_2, 0.5, "1/2"},
		{CodeRate2_3, 2.0 / 3.0, "2/3"},
		{CodeRate3_4, 0.75, "3/4"},
		{CodeRate5_6, 5.0 / 6.0, "5/6"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rate.Ratio())
			assert.Equal(t, tt.str, tt.rate.String())
		})
	}
}

func TestCodeRate_Undefined_RatioPanics(t *testing.T) {
	assert.Panics(t, func() { CodeRateUndefined.Ratio() })
	assert.Equal(t, "undefined", CodeRateUndefined.String())
}

func TestModulationClass_String(t *testing.T) {
	assert.Equal(t, "ERP-OFDM", ModClassErpOfdm.String())
	assert.Equal(t, "HR/DSSS", ModClassHrDsss.String())
	assert.Equal(t, "ModulationClass(99)", ModulationClass(99).String())
}
