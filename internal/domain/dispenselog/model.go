package dispenselog

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailure Status = "Failure"
)

var validStatuses = map[Status]bool{
	StatusSuccess: true,
	StatusFailure: true,
}

// MedicineCounts snapshots the quantities a dispense attempt covered.
type MedicineCounts struct {
	Paracetamol  int `db:"paracetamol" json:"paracetamol"`
	Azithromycin int `db:"azithromycin" json:"azithromycin"`
	Revital      int `db:"revital" json:"revital"`
}

// Entry is one immutable audit record of a dispense attempt. Medicines is nil
// for failures recorded before any prescription was found.
type Entry struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	RFIDTag      string          `db:"rfid_tag" json:"rfidTag"`
	PatientName  string          `db:"patient_name" json:"patientName"`
	Medicines    *MedicineCounts `json:"medicines,omitempty"`
	Status       Status          `db:"status" json:"status"`
	ErrorMessage string          `db:"error_message" json:"errorMessage,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
