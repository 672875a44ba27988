package cycle

import (
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/fault"
)

// Status represents the lifecycle state of a fund cycle.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed:
		return true
	}

	return false
}

// Cycle is a time-boxed budget allocation window for one department.
// Amounts are in cents. SpentBudget only moves through the review debit and
// never exceeds AllocatedBudget.
type Cycle struct {
	ID              uuid.UUID
	Name            string
	AcademicYear    string
	DepartmentID    uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	AllocatedBudget int64
	SpentBudget     int64
	Status          Status
	Description     string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// RemainingBudget is the amount still available for approvals.
func (c *Cycle) RemainingBudget() int64 {
	return c.AllocatedBudget - c.SpentBudget
}

// Activate moves the cycle from draft to active. Calling it on an already
// active or closed cycle fails rather than no-ops.
func (c *Cycle) Activate() error {
	if c.Status != StatusDraft {
		return fault.InvalidStatef("cannot activate %s cycle", c.Status)
	}

	c.Status = StatusActive

	return nil
}

// Close moves the cycle from active to closed, permanently freezing its
// spent budget. Closed is terminal; there is no way back.
func (c *Cycle) Close() error {
	if c.Status != StatusActive {
		return fault.InvalidStatef("cannot close %s cycle", c.Status)
	}

	c.Status = StatusClosed

	return nil
}

// Editable reports whether the cycle's fields may still be changed or the
// cycle deleted. Only drafts are mutable; active and closed cycles are frozen
// except for the spent counter.
func (c *Cycle) Editable() bool {
	return c.Status == StatusDraft
}

// validateWindow checks date ordering and budget sign, shared by create and
// update paths.
func validateWindow(start, end time.Time, allocated int64) error {
	if start.IsZero() || end.IsZero() {
		return fault.Validationf("start and end dates are required")
	}

	if !start.Before(end) {
		return fault.Validationf("start date must be before end date")
	}

	if allocated < 0 {
		return fault.Validationf("allocated budget cannot be negative")
	}

	return nil
}
