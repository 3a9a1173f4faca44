package prescription

import (
	"time"

	"github.com/google/uuid"

	"github.com/medibox/medibox/internal/domain/inventory"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusDispensed Status = "Dispensed"
	StatusCancelled Status = "Cancelled"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusDispensed: true,
	StatusCancelled: true,
}

// Prescription is one order against the dispenser. The three quantity fields
// mirror the three medicines the prescription form and the firmware know
// about. At most one Pending prescription exists per tag at any time.
type Prescription struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	RFIDTag       string     `db:"rfid_tag" json:"rfidTag"`
	Paracetamol   int        `db:"paracetamol" json:"paracetamol"`
	Azithromycin  int        `db:"azithromycin" json:"azithromycin"`
	Revital       int        `db:"revital" json:"revital"`
	Frequency     string     `db:"frequency" json:"frequency"`
	Duration      string     `db:"duration" json:"duration"`
	Status        Status     `db:"status" json:"status"`
	LastDispensed *time.Time `db:"last_dispensed" json:"lastDispensed,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// Demands maps the quantity fields onto inventory demands, in form order.
func (p *Prescription) Demands() []inventory.Demand {
	return []inventory.Demand{
		{Medicine: inventory.MedicineParacetamol, Quantity: p.Paracetamol},
		{Medicine: inventory.MedicineAzithromycin, Quantity: p.Azithromycin},
		{Medicine: inventory.MedicineRevital, Quantity: p.Revital},
	}
}
