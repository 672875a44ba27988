package proposal

import (
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/fault"
)

// Status represents the lifecycle state of a proposal.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}

	return false
}

// Terminal reports whether no further transition may leave this status.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Priority of a proposal as set by the submitting faculty member.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}

	return false
}

// Keyword is the catalog entry an item references, loaded via JOIN for
// display and reporting. The item's UnitCost is a snapshot; later catalog
// changes never touch it.
type Keyword struct {
	ID       uuid.UUID
	Name     string
	Category string
}

// Item is one budgeted line of a proposal. TotalCost is always derived
// server-side from Quantity and UnitCost.
type Item struct {
	KeywordID     uuid.UUID
	Quantity      int
	UnitCost      int64
	TotalCost     int64
	Justification string
	Keyword       *Keyword // Loaded via JOIN
}

// Proposal is a faculty request to spend against an active fund cycle.
// DepartmentID is copied from the faculty's department at creation and never
// re-derived, so later user edits cannot reattribute it.
type Proposal struct {
	ID             uuid.UUID
	Reference      string
	FacultyID      uuid.UUID
	DepartmentID   uuid.UUID
	CycleID        uuid.UUID
	Items          []Item
	TotalAmount    int64
	Status         Status
	Priority       Priority
	SubmittedAt    *time.Time
	ReviewedAt     *time.Time
	ReviewedBy     *uuid.UUID
	ReviewComments string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Submit moves a draft to submitted and stamps the time. One-way; there is
// no unsubmit.
func (p *Proposal) Submit(now time.Time) error {
	if p.Status != StatusDraft {
		return fault.InvalidStatef("cannot submit %s proposal", p.Status)
	}

	p.Status = StatusSubmitted
	p.SubmittedAt = &now

	return nil
}

// Editable reports whether items and priority may still change, and whether
// the proposal may be deleted.
func (p *Proposal) Editable() bool {
	return p.Status == StatusDraft
}

// OwnedBy reports whether the given user is the submitting faculty member.
func (p *Proposal) OwnedBy(userID uuid.UUID) bool {
	return p.FacultyID == userID
}

// validateItems checks the item list and returns the items with their
// derived costs filled in, plus the recomputed total. Caller-supplied
// TotalCost values are discarded.
func validateItems(items []Item) ([]Item, int64, error) {
	if len(items) == 0 {
		return nil, 0, fault.Validationf("at least one item is required")
	}

	out := make([]Item, len(items))

	var total int64

	for i, item := range items {
		if item.KeywordID == uuid.Nil {
			return nil, 0, fault.Validationf("item %d: keyword is required", i+1)
		}

		if item.Quantity < 1 {
			return nil, 0, fault.Validationf("item %d: quantity must be at least 1", i+1)
		}

		if item.UnitCost < 0 {
			return nil, 0, fault.Validationf("item %d: unit cost cannot be negative", i+1)
		}

		if item.Justification == "" {
			return nil, 0, fault.Validationf("item %d: justification is required", i+1)
		}

		item.TotalCost = int64(item.Quantity) * item.UnitCost
		out[i] = item
		total += item.TotalCost
	}

	return out, total, nil
}
