package proposal

import (
	"time"

	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/proposal"
)

type proposalResponse struct {
	ID             uuid.UUID         `json:"id"`
	Reference      string            `json:"reference"`
	FacultyID      uuid.UUID         `json:"faculty_id"`
	DepartmentID   uuid.UUID         `json:"department_id"`
	CycleID        uuid.UUID         `json:"cycle_id"`
	Status         proposal.Status   `json:"status"`
	Priority       proposal.Priority `json:"priority"`
	Items          []itemResponse    `json:"items"`
	TotalAmount    int64             `json:"total_amount"`
	SubmittedAt    *time.Time        `json:"submitted_at,omitempty"`
	ReviewedAt     *time.Time        `json:"reviewed_at,omitempty"`
	ReviewedBy     *uuid.UUID        `json:"reviewed_by,omitempty"`
	ReviewComments string            `json:"review_comments,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      *time.Time        `json:"updated_at,omitempty"`
}

type itemResponse struct {
	KeywordID     uuid.UUID        `json:"keyword_id"`
	Quantity      int              `json:"quantity"`
	UnitCost      int64            `json:"unit_cost"`
	TotalCost     int64            `json:"total_cost"`
	Justification string           `json:"justification"`
	Keyword       *keywordResponse `json:"keyword,omitempty"`
}

type keywordResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

func toResponse(p *proposal.Proposal) proposalResponse {
	resp := proposalResponse{
		ID:             p.ID,
		Reference:      p.Reference,
		FacultyID:      p.FacultyID,
		DepartmentID:   p.DepartmentID,
		CycleID:        p.CycleID,
		Status:         p.Status,
		Priority:       p.Priority,
		Items:          make([]itemResponse, len(p.Items)),
		TotalAmount:    p.TotalAmount,
		SubmittedAt:    p.SubmittedAt,
		ReviewedAt:     p.ReviewedAt,
		ReviewedBy:     p.ReviewedBy,
		ReviewComments: p.ReviewComments,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	for i, item := range p.Items {
		resp.Items[i] = itemResponse{
			KeywordID:     item.KeywordID,
			Quantity:      item.Quantity,
			UnitCost:      item.UnitCost,
			TotalCost:     item.TotalCost,
			Justification: item.Justification,
		}

		if item.Keyword != nil {
			resp.Items[i].Keyword = &keywordResponse{
				ID:       item.Keyword.ID,
				Name:     item.Keyword.Name,
				Category: item.Keyword.Category,
			}
		}
	}

	return resp
}

func toResponseList(proposals []*proposal.Proposal) []proposalResponse {
	resp := make([]proposalResponse, len(proposals))
	for i, p := range proposals {
		resp[i] = toResponse(p)
	}

	return resp
}
