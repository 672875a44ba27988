package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acadfund/acadfund/internal/catalog"
	"github.com/acadfund/acadfund/internal/http/auth"
	"github.com/acadfund/acadfund/internal/http/httperr"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type keywordResponse struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Category         catalog.Category `json:"category"`
	Description      string           `json:"description,omitempty"`
	DepartmentID     uuid.UUID        `json:"department_id"`
	EstimatedCostMin *int64           `json:"estimated_cost_min,omitempty"`
	EstimatedCostMax *int64           `json:"estimated_cost_max,omitempty"`
	Active           bool             `json:"active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(k *catalog.Keyword) keywordResponse {
	return keywordResponse{
		ID:               k.ID,
		Name:             k.Name,
		Category:         k.Category,
		Description:      k.Description,
		DepartmentID:     k.DepartmentID,
		EstimatedCostMin: k.EstimatedCostMin,
		EstimatedCostMax: k.EstimatedCostMax,
		Active:           k.Active,
		CreatedAt:        k.CreatedAt,
		UpdatedAt:        k.UpdatedAt,
	}
}

type createKeywordRequest struct {
	Name             string           `json:"name"`
	Category         catalog.Category `json:"category"`
	Description      string           `json:"description"`
	DepartmentID     uuid.UUID        `json:"department_id"`
	EstimatedCostMin *int64           `json:"estimated_cost_min,omitempty"`
	EstimatedCostMax *int64           `json:"estimated_cost_max,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	k, err := h.svc.Create(r.Context(), auth.FromContext(r.Context()), catalog.CreateParams{
		Name:             req.Name,
		Category:         req.Category,
		Description:      req.Description,
		DepartmentID:     req.DepartmentID,
		EstimatedCostMin: req.EstimatedCostMin,
		EstimatedCostMax: req.EstimatedCostMax,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(k)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ListFilter{}

	if s := r.URL.Query().Get("department_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.DepartmentID = new(id)
		}
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = new(catalog.Category(s))
	}

	if s := r.URL.Query().Get("search"); s != "" {
		filter.Search = new(s)
	}

	keywords, err := h.svc.List(r.Context(), auth.FromContext(r.Context()), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp := make([]keywordResponse, len(keywords))
	for i, k := range keywords {
		resp[i] = toResponse(k)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	k, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(k)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateKeywordRequest struct {
	Name        *string           `json:"name,omitempty"`
	Category    *catalog.Category `json:"category,omitempty"`
	Description *string           `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	k, err := h.svc.Update(r.Context(), auth.FromContext(r.Context()), id, catalog.UpdateParams{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(k)); err != nil {
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
