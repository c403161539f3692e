// Package catalog provides the component model and the normalization
// adapter that turns raw collaborator records into typed components.
package catalog

import "strings"

// SlotType identifies which selection slot a component may occupy.
type SlotType string

// The eight fixed hardware slots. Anything the collaborator sends outside
// this set is passed through lower-cased rather than rejected.
const (
	SlotCPU         SlotType = "cpu"
	SlotGPU         SlotType = "gpu"
	SlotMotherboard SlotType = "motherboard"
	SlotRAM         SlotType = "ram"
	SlotStorage     SlotType = "storage"
	SlotPSU         SlotType = "psu"
	SlotCase        SlotType = "case"
	SlotCooler      SlotType = "cooler"
)

// SlotTypes lists the known slots in display order.
func SlotTypes() []SlotType {
	return []SlotType{
		SlotCPU, SlotGPU, SlotMotherboard, SlotRAM,
		SlotStorage, SlotPSU, SlotCase, SlotCooler,
	}
}

// slotSynonyms maps collaborator spellings onto the closed slot set.
// Keys are lower-cased before lookup.
var slotSynonyms = map[string]SlotType{
	"cpu":          SlotCPU,
	"gpu":          SlotGPU,
	"motherboard":  SlotMotherboard,
	"ram":          SlotRAM,
	"memory":       SlotRAM,
	"storage":      SlotStorage,
	"psu":          SlotPSU,
	"power_supply": SlotPSU,
	"power-supply": SlotPSU,
	"powersupply":  SlotPSU,
	"case":         SlotCase,
	"cooler":       SlotCooler,
}

// NormalizeSlotType maps a raw collaborator type string onto the slot set.
// Unrecognized values degrade to a lower-cased passthrough, never an error.
func NormalizeSlotType(raw string) SlotType {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if slot, ok := slotSynonyms[lowered]; ok {
		return slot
	}
	return SlotType(lowered)
}

// IsKnown reports whether the slot belongs to the closed set.
func (s SlotType) IsKnown() bool {
	for _, known := range SlotTypes() {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the string form of the slot type.
func (s SlotType) String() string {
	return string(s)
}

// Component is a normalized catalog record. It is read-only from the
// client's perspective; the collaborator owns the catalog.
type Component struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Slot  SlotType       `json:"type"`
	Brand string         `json:"brand,omitempty"`
	Model string         `json:"model,omitempty"`
	Price float64        `json:"price"`
	Image string         `json:"image,omitempty"`
	Specs Specifications `json:"specifications"`

	// Commerce fields, carried through for display only.
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	PurchaseURL   string  `json:"purchaseUrl,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	StockQuantity int     `json:"stockQuantity,omitempty"`
	Available     bool    `json:"isAvailable"`
	Description   string  `json:"description,omitempty"`
}
