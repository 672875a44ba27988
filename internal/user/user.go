package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/actor"
)

// User is an account known to the system. Role and department changes apply
// from the moment of the change onward; proposals and cycles keep the IDs
// they were created with.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         actor.Role
	DepartmentID uuid.UUID
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// AsActor converts the stored record into the authorization view used by
// every domain operation.
func (u *User) AsActor() actor.Actor {
	return actor.Actor{ID: u.ID, Role: u.Role, DepartmentID: u.DepartmentID}
}
