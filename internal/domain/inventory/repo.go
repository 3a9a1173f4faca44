package inventory

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the singleton inventory row is absent.
	ErrNotFound = errors.New("inventory not found")
	// ErrSlotNotFound is returned for an out-of-range slot index.
	ErrSlotNotFound = errors.New("servo not found")
	// ErrMaxSlots is returned when adding past the slot cap.
	ErrMaxSlots = errors.New("max servos reached")
)

type Repository interface {
	// Ensure loads the singleton inventory, creating it with the default
	// slots when absent.
	Ensure(ctx context.Context) (*Inventory, error)
	// Get loads the singleton inventory or returns ErrNotFound.
	Get(ctx context.Context) (*Inventory, error)
	// SaveSlots replaces the inventory's slot list in a single write.
	SaveSlots(ctx context.Context, inv *Inventory) error
}
