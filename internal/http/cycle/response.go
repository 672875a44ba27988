package cycle

import (
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/cycle"
)

type cycleResponse struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	AcademicYear    string       `json:"academic_year"`
	DepartmentID    uuid.UUID    `json:"department_id"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	AllocatedBudget int64        `json:"allocated_budget"`
	SpentBudget     int64        `json:"spent_budget"`
	RemainingBudget int64        `json:"remaining_budget"`
	Status          cycle.Status `json:"status"`
	Description     string       `json:"description,omitempty"`
	CreatedBy       uuid.UUID    `json:"created_by"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       *time.Time   `json:"updated_at,omitempty"`
}

func toResponse(c *cycle.Cycle) cycleResponse {
	return cycleResponse{
		ID:              c.ID,
		Name:            c.Name,
		AcademicYear:    c.AcademicYear,
		DepartmentID:    c.DepartmentID,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		AllocatedBudget: c.AllocatedBudget,
		SpentBudget:     c.SpentBudget,
		RemainingBudget: c.RemainingBudget(),
		Status:          c.Status,
		Description:     c.Description,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toResponseList(cycles []*cycle.Cycle) []cycleResponse {
	resp := make([]cycleResponse, len(cycles))
	for i, c := range cycles {
		resp[i] = toResponse(c)
	}

	return resp
}
