package catalog

import (
	"strconv"
	"strings"
)

// RawRecord is one loosely-typed catalog record as the collaborator sends
// it. Field names vary between backend revisions, so everything is decoded
// permissively and normalized here.
type RawRecord map[string]any

// Normalize converts a list of raw collaborator records into typed
// components. Records are never dropped: unknown types pass through
// lower-cased, undecodable specs are wrapped, malformed prices become zero.
func Normalize(records []RawRecord) []Component {
	components := make([]Component, 0, len(records))
	for _, rec := range records {
		components = append(components, NormalizeRecord(rec))
	}
	return components
}

// NormalizeRecord converts a single raw record into a Component.
func NormalizeRecord(rec RawRecord) Component {
	c := Component{
		ID:    stringField(rec, "id"),
		Name:  stringField(rec, "name"),
		Slot:  NormalizeSlotType(stringField(rec, "type")),
		Brand: stringField(rec, "brand"),
		Model: stringField(rec, "model"),
		Price: priceField(rec, "price"),
		Specs: DecodeSpecs(rec["specifications"]),

		OriginalPrice: priceField(rec, "originalPrice"),
		PurchaseURL:   stringField(rec, "purchaseUrl"),
		StockQuantity: intField(rec, "stockQuantity"),
		Available:     boolField(rec, "isAvailable", true),
		Description:   stringField(rec, "description"),
	}

	// The backend has used both "image" and "imageUrl" over time.
	c.Image = stringField(rec, "image")
	if c.Image == "" {
		c.Image = stringField(rec, "imageUrl")
	}

	// External SKU reference under either key.
	c.SKU = stringField(rec, "sku")
	if c.SKU == "" {
		c.SKU = stringField(rec, "jdSkuId")
	}

	return c
}

// stringField reads a field as a string, stringifying numeric ids.
func stringField(rec RawRecord, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// priceField coerces a price-like field to a non-negative amount.
// Absent or malformed values default to zero.
func priceField(rec RawRecord, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		if v < 0 {
			return 0
		}
		return v
	case int:
		if v < 0 {
			return 0
		}
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func intField(rec RawRecord, key string) int {
	switch v := rec[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func boolField(rec RawRecord, key string, fallback bool) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return fallback
}
