package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/catalog"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/activities", h.listActivities)
	r.Patch("/activities/{id}", h.updateActivity)
	r.Get("/inventory", h.listInventory)
}

type entryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	DefaultRate decimal.Decimal `json:"default_rate"`
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.Activities(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(activities))
	for i, a := range activities {
		resp[i] = entryResponse{ID: a.ID, Name: a.Name, DefaultRate: a.DefaultRate}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateActivityRequest struct {
	Name        string          `json:"name"`
	DefaultRate decimal.Decimal `json:"default_rate"`
}

func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.UpdateActivity(r.Context(), id, req.Name, req.DefaultRate)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(entryResponse{ID: a.ID, Name: a.Name, DefaultRate: a.DefaultRate}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, len(items))
	for i, item := range items {
		resp[i] = entryResponse{ID: item.ID, Name: item.Name, DefaultRate: item.DefaultRate}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
