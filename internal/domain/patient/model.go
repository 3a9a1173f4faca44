package patient

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var validStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// Patient is a registered ward patient, keyed by the RFID tag on their
// wristband.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	RFIDTag   string    `db:"rfid_tag" json:"rfidTag"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Gender    Gender    `db:"gender" json:"gender"`
	Condition string    `db:"condition" json:"condition"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Update carries the optional fields of a partial update; nil means keep the
// current value.
type Update struct {
	Name      *string `json:"name"`
	Age       *int    `json:"age"`
	Gender    *Gender `json:"gender"`
	Condition *string `json:"condition"`
	Status    *Status `json:"status"`
}
