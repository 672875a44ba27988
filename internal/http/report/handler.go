package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/http/auth"
	"github.com/acadfund/acadfund/internal/http/httperr"
	"github.com/acadfund/acadfund/internal/proposal"
	"github.com/acadfund/acadfund/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/proposals", h.proposals)
	r.Get("/cycles/{id}", h.cycleStats)
	r.Get("/institutional", h.institutionalStats)
}

type proposalRow struct {
	ID           uuid.UUID         `json:"id"`
	Reference    string            `json:"reference"`
	FacultyID    uuid.UUID         `json:"faculty_id"`
	DepartmentID uuid.UUID         `json:"department_id"`
	CycleID      uuid.UUID         `json:"cycle_id"`
	Status       proposal.Status   `json:"status"`
	Priority     proposal.Priority `json:"priority"`
	TotalAmount  int64             `json:"total_amount"`
}

func (h *Handler) proposals(w http.ResponseWriter, r *http.Request) {
	filter := proposal.ListFilter{}

	if s := r.URL.Query().Get("cycle_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CycleID = new(id)
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(proposal.Status(s))
	}

	if s := r.URL.Query().Get("priority"); s != "" {
		filter.Priority = new(proposal.Priority(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.SubmittedFrom = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.SubmittedTo = new(t)
		}
	}

	proposals, err := h.svc.Proposals(r.Context(), auth.FromContext(r.Context()), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	rows := make([]proposalRow, len(proposals))
	for i, p := range proposals {
		rows[i] = proposalRow{
			ID:           p.ID,
			Reference:    p.Reference,
			FacultyID:    p.FacultyID,
			DepartmentID: p.DepartmentID,
			CycleID:      p.CycleID,
			Status:       p.Status,
			Priority:     p.Priority,
			TotalAmount:  p.TotalAmount,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(rows); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) cycleStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.CycleStats(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toCycleStatsResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) institutionalStats(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")

	stats, err := h.svc.InstitutionalStats(r.Context(), auth.FromContext(r.Context()), year)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toInstitutionalStatsResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
