package proposal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/http/auth"
	"github.com/acadfund/acadfund/internal/http/httperr"
	"github.com/acadfund/acadfund/internal/proposal"
	"github.com/acadfund/acadfund/internal/review"
)

type Handler struct {
	svc     *proposal.Service
	reviews *review.Service
}

func NewHandler(svc *proposal.Service, reviews *review.Service) *Handler {
	return &Handler{svc: svc, reviews: reviews}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/submit", h.submit)
	r.Put("/{id}/review", h.review)
}

type itemRequest struct {
	KeywordID     uuid.UUID `json:"keyword_id"`
	Quantity      int       `json:"quantity"`
	UnitCost      int64     `json:"unit_cost"`
	Justification string    `json:"justification"`
}

func toItems(reqs []itemRequest) []proposal.Item {
	items := make([]proposal.Item, len(reqs))
	for i, req := range reqs {
		items[i] = proposal.Item{
			KeywordID:     req.KeywordID,
			Quantity:      req.Quantity,
			UnitCost:      req.UnitCost,
			Justification: req.Justification,
		}
	}

	return items
}

type createProposalRequest struct {
	CycleID  uuid.UUID         `json:"cycle_id"`
	Items    []itemRequest     `json:"items"`
	Priority proposal.Priority `json:"priority"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), auth.FromContext(r.Context()), proposal.CreateParams{
		CycleID:  req.CycleID,
		Items:    toItems(req.Items),
		Priority: req.Priority,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
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

	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Limit = n
		}
	}

	proposals, err := h.svc.List(r.Context(), auth.FromContext(r.Context()), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(proposals)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProposalRequest struct {
	CycleID  *uuid.UUID         `json:"cycle_id,omitempty"`
	Items    []itemRequest      `json:"items,omitempty"`
	Priority *proposal.Priority `json:"priority,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := proposal.UpdateParams{
		CycleID:  req.CycleID,
		Priority: req.Priority,
	}

	if req.Items != nil {
		params.Items = toItems(req.Items)
	}

	p, err := h.svc.Update(r.Context(), auth.FromContext(r.Context()), id, params)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), auth.FromContext(r.Context()), id); err != nil {
		httperr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Submit(r.Context(), auth.FromContext(r.Context()), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type reviewRequest struct {
	Decision review.Decision `json:"decision"`
	Comments string          `json:"comments"`
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.reviews.Review(r.Context(), auth.FromContext(r.Context()), id, req.Decision, req.Comments)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
