package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecord_FullRecord(t *testing.T) {
	rec := RawRecord{
		"id":             123.0,
		"name":           "Intel Core i7-13700K",
		"type":           "CPU",
		"brand":          "Intel",
		"model":          "Core i7-13700K",
		"price":          2499.0,
		"imageUrl":       "https://img.example.com/cpu.png",
		"specifications": `{"cores":16}`,
		"originalPrice":  2799.0,
		"purchaseUrl":    "https://item.example.com/123",
		"jdSkuId":        "sku-123",
		"stockQuantity":  12.0,
		"isAvailable":    true,
	}

	c := NormalizeRecord(rec)

	assert.Equal(t, "123", c.ID)
	assert.Equal(t, SlotCPU, c.Slot)
	assert.Equal(t, 2499.0, c.Price)
	assert.Equal(t, 2799.0, c.OriginalPrice)
	assert.Equal(t, "https://img.example.com/cpu.png", c.Image)
	assert.Equal(t, "sku-123", c.SKU)
	assert.Equal(t, 12, c.StockQuantity)
	assert.True(t, c.Available)
	assert.Equal(t, 16.0, c.Specs.Attributes()["cores"])
}

func TestNormalizeRecord_TypeSynonyms(t *testing.T) {
	assert.Equal(t, SlotRAM, NormalizeRecord(RawRecord{"type": "MEMORY"}).Slot)
	assert.Equal(t, SlotPSU, NormalizeRecord(RawRecord{"type": "power_supply"}).Slot)
	assert.Equal(t, SlotType("foo"), NormalizeRecord(RawRecord{"type": "FOO"}).Slot)
}

func TestNormalizeRecord_PriceCoercion(t *testing.T) {
	assert.Equal(t, 599.0, NormalizeRecord(RawRecord{"price": "599"}).Price)
	assert.Equal(t, 0.0, NormalizeRecord(RawRecord{"price": "not a number"}).Price)
	assert.Equal(t, 0.0, NormalizeRecord(RawRecord{}).Price)
	assert.Equal(t, 0.0, NormalizeRecord(RawRecord{"price": -50.0}).Price)
}

func TestNormalizeRecord_SpecFallback(t *testing.T) {
	c := NormalizeRecord(RawRecord{"specifications": "free-form spec text"})

	require.True(t, c.Specs.IsFallback())
	assert.Equal(t, "free-form spec text", c.Specs.Attributes()["规格"])
}

func TestNormalizeRecord_AvailabilityDefaultsTrue(t *testing.T) {
	assert.True(t, NormalizeRecord(RawRecord{}).Available)
	assert.False(t, NormalizeRecord(RawRecord{"isAvailable": false}).Available)
}

func TestNormalize_PreservesOrderAndCount(t *testing.T) {
	records := []RawRecord{
		{"id": "a", "type": "cpu"},
		{"id": "b", "type": "BANANA"},
		{"id": "c", "type": "memory"},
	}

	components := Normalize(records)

	require.Len(t, components, 3)
	assert.Equal(t, "a", components[0].ID)
	assert.Equal(t, SlotType("banana"), components[1].Slot)
	assert.Equal(t, SlotRAM, components[2].Slot)
}
