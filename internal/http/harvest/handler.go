package harvest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/collector"
	"github.com/Hasitha-J/tea-management/internal/harvest"
)

type Handler struct {
	svc        *harvest.Service
	collectors *collector.Service
}

func NewHandler(svc *harvest.Service, collectors *collector.Service) *Handler {
	return &Handler{svc: svc, collectors: collectors}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type advanceRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type createHarvestRequest struct {
	Date        time.Time        `json:"date"`
	FieldID     *uuid.UUID       `json:"field_id"`
	Crop        harvest.Crop     `json:"crop"`
	Weight      decimal.Decimal  `json:"weight"`
	Rate        *decimal.Decimal `json:"rate"`
	CollectorID *uuid.UUID       `json:"collector_id"`

	// An advance handed to the collector at the weighing, recorded in
	// the same request.
	Advance *advanceRequest `json:"advance"`
}

type createHarvestResponse struct {
	Harvest harvestResponse `json:"harvest"`
	Advance *uuid.UUID      `json:"advance_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createHarvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Advance != nil && req.CollectorID == nil {
		http.Error(w, "advance requires a collector", http.StatusBadRequest)
		return
	}

	hv, err := h.svc.Log(r.Context(), harvest.CreateParams{
		Date:        req.Date,
		FieldID:     req.FieldID,
		Crop:        req.Crop,
		Weight:      req.Weight,
		Rate:        req.Rate,
		CollectorID: req.CollectorID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := createHarvestResponse{Harvest: toResponse(hv)}

	if req.Advance != nil {
		adv, err := h.collectors.RecordAdvance(r.Context(), *req.CollectorID, req.Date, req.Advance.Amount, req.Advance.Description)
		if err != nil {
			// The harvest is already stored; report the partial outcome
			// instead of failing the whole request.
			slog.Error("failed to record advance with harvest", "harvest_id", hv.ID, "error", err)
			http.Error(w, "harvest recorded but advance failed: "+err.Error(), http.StatusInternalServerError)

			return
		}

		resp.Advance = &adv.ID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := harvest.ListFilter{}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	if s := r.URL.Query().Get("field_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.FieldID = &id
		}
	}

	if s := r.URL.Query().Get("collector_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CollectorID = &id
		}
	}

	if s := r.URL.Query().Get("crop"); s != "" {
		crop := harvest.Crop(s)
		filter.Crop = &crop
	}

	harvests, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(harvests)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	hv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, harvest.ErrNotFound) {
			http.Error(w, "harvest not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(hv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateHarvestRequest struct {
	Date    *time.Time       `json:"date,omitempty"`
	FieldID *uuid.UUID       `json:"field_id,omitempty"`
	Weight  *decimal.Decimal `json:"weight,omitempty"`
	Rate    *decimal.Decimal `json:"rate,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateHarvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, harvest.ErrNotFound) {
			http.Error(w, "harvest not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Date != nil {
		hv.Date = *req.Date
	}

	if req.FieldID != nil {
		hv.FieldID = req.FieldID
	}

	if req.Weight != nil {
		hv.Weight = *req.Weight
	}

	if req.Rate != nil {
		hv.Rate = req.Rate
	}

	if err := h.svc.Update(r.Context(), hv); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(hv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
