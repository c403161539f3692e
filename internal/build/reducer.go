// Package build owns the in-progress build: one component per slot and
// the derived total price. Mutations go through pure selection
// operations so the total can never drift from the parts that make it
// up.
package build

import (
	"sort"

	"github.com/buildmaster/cli/internal/catalog"
)

// Selection maps each occupied slot to its chosen component.
type Selection map[catalog.SlotType]catalog.Component

// Total derives the build price from the selection. It is recomputed
// from scratch on every call; there is no cached figure to invalidate.
func (s Selection) Total() float64 {
	var total float64
	for _, c := range s {
		total += c.Price
	}
	return total
}

// Slots returns the occupied slots in canonical order, with any
// unrecognized slots sorted after the known ones.
func (s Selection) Slots() []catalog.SlotType {
	known := make([]catalog.SlotType, 0, len(s))
	for _, slot := range catalog.SlotTypes() {
		if _, ok := s[slot]; ok {
			known = append(known, slot)
		}
	}

	var extra []catalog.SlotType
	for slot := range s {
		if !slot.IsKnown() {
			extra = append(extra, slot)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(known, extra...)
}

// clone copies the selection so callers never share the backing map.
func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for slot, c := range s {
		out[slot] = c
	}
	return out
}

// withComponent returns a new selection with the component installed in
// its slot, replacing any previous occupant.
func (s Selection) withComponent(c catalog.Component) Selection {
	out := s.clone()
	out[c.Slot] = c
	return out
}

// withoutSlot returns a new selection with the slot vacated. Removing
// an empty slot yields an identical selection.
func (s Selection) withoutSlot(slot catalog.SlotType) Selection {
	out := s.clone()
	delete(out, slot)
	return out
}
