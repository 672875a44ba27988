package department

import (
	"time"

	"github.com/google/uuid"
)

// Department owns fund cycles and the users attributed to it. Departments
// are never deleted, only deactivated, so historical proposals keep a valid
// reference.
type Department struct {
	ID          uuid.UUID
	Name        string
	Code        string
	Budget      int64
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
