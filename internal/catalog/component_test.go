package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlotType_KnownTypes(t *testing.T) {
	assert.Equal(t, SlotCPU, NormalizeSlotType("cpu"))
	assert.Equal(t, SlotCPU, NormalizeSlotType("CPU"))
	assert.Equal(t, SlotGPU, NormalizeSlotType("Gpu"))
	assert.Equal(t, SlotMotherboard, NormalizeSlotType("MOTHERBOARD"))
}

func TestNormalizeSlotType_Synonyms(t *testing.T) {
	assert.Equal(t, SlotRAM, NormalizeSlotType("MEMORY"))
	assert.Equal(t, SlotRAM, NormalizeSlotType("memory"))
	assert.Equal(t, SlotPSU, NormalizeSlotType("power_supply"))
	assert.Equal(t, SlotPSU, NormalizeSlotType("POWER_SUPPLY"))
	assert.Equal(t, SlotPSU, NormalizeSlotType("power-supply"))
}

func TestNormalizeSlotType_UnknownPassthrough(t *testing.T) {
	// Unrecognized backend spellings degrade to lower-cased passthrough.
	assert.Equal(t, SlotType("foo"), NormalizeSlotType("FOO"))
	assert.Equal(t, SlotType("soundcard"), NormalizeSlotType("SoundCard"))
	assert.False(t, NormalizeSlotType("FOO").IsKnown())
}

func TestNormalizeSlotType_Whitespace(t *testing.T) {
	assert.Equal(t, SlotCPU, NormalizeSlotType("  cpu "))
}

func TestSlotTypes_ClosedSet(t *testing.T) {
	slots := SlotTypes()
	assert.Len(t, slots, 8)
	for _, s := range slots {
		assert.True(t, s.IsKnown())
	}
}
