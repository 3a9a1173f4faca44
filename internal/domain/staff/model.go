package staff

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDoctor Role = "Doctor"
	RoleAdmin  Role = "Admin"
)

var validRoles = map[Role]bool{
	RoleDoctor: true,
	RoleAdmin:  true,
}

// Staff is a clinician account used by the dashboard.
type Staff struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Username  string    `db:"username" json:"username"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
