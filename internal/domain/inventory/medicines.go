package inventory

import "strings"

// The dispenser firmware and the prescription schema both hardcode exactly
// these three drugs. Slot medicine names are free text and matched against
// this registry case-insensitively.
const (
	MedicineParacetamol  = "Paracetamol"
	MedicineAzithromycin = "Azithromycin"
	MedicineRevital      = "Revital"
)

// KnownMedicines lists the medicines a prescription can carry, in the order
// they appear on the prescription form.
var KnownMedicines = []string{MedicineParacetamol, MedicineAzithromycin, MedicineRevital}

const (
	// MaxSlots caps the slot list; the physical carousel has twelve bays.
	MaxSlots = 12
	// LowStockThreshold triggers a refill alert when a slot's stock is
	// strictly below it.
	LowStockThreshold = 10
	// DefaultSlotCapacity is the capacity assigned to seeded slots and to
	// added slots that specify none.
	DefaultSlotCapacity = 100
)

func normalizeMedicine(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MedicinesEqual reports whether two medicine names refer to the same drug.
func MedicinesEqual(a, b string) bool {
	return normalizeMedicine(a) == normalizeMedicine(b)
}

// MatchSlot finds the slot bound to the given medicine, or nil when the
// dispenser does not stock it.
func MatchSlot(slots []Slot, medicine string) *Slot {
	want := normalizeMedicine(medicine)
	if want == "" {
		return nil
	}
	for i := range slots {
		if normalizeMedicine(slots[i].Medicine) == want {
			return &slots[i]
		}
	}
	return nil
}

// DefaultSlots returns the three factory-default slots used to seed an empty
// inventory.
func DefaultSlots() []Slot {
	return []Slot{
		{Position: 1, Medicine: MedicineParacetamol, Stock: DefaultSlotCapacity, Max: DefaultSlotCapacity},
		{Position: 2, Medicine: MedicineAzithromycin, Stock: DefaultSlotCapacity, Max: DefaultSlotCapacity},
		{Position: 3, Medicine: MedicineRevital, Stock: DefaultSlotCapacity, Max: DefaultSlotCapacity},
	}
}
