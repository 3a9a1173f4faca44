package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one dispenser position with a bound medicine, current stock and
// capacity. Positions are 1-based and recomputed after removals; they are not
// stable identifiers.
type Slot struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Position int       `db:"position" json:"slot"`
	Medicine string    `db:"medicine" json:"medicine"`
	Stock    int       `db:"stock" json:"stock"`
	Max      int       `db:"max_capacity" json:"max"`
}

// Clamp enforces the slot invariants: max >= 1 and 0 <= stock <= max.
func (s *Slot) Clamp() {
	if s.Max < 1 {
		s.Max = 1
	}
	if s.Stock < 0 {
		s.Stock = 0
	}
	if s.Stock > s.Max {
		s.Stock = s.Max
	}
}

// Inventory is the single process-wide dispenser inventory: an ordered list
// of slots. Exactly one row exists; it is seeded lazily on first read.
type Inventory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Slots     []Slot    `json:"servos"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SlotPatch is a partial slot update; nil fields are left unchanged.
type SlotPatch struct {
	Medicine *string `json:"medicine"`
	Stock    *int    `json:"stock"`
	Max      *int    `json:"max"`
}

// Demand is one medicine quantity requested from stock.
type Demand struct {
	Medicine string
	Quantity int
}
