package collector

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/collector"
)

type Handler struct {
	svc *collector.Service
}

func NewHandler(svc *collector.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)

	r.Put("/rates", h.setRate)
	r.Get("/rates", h.listRates)

	r.Post("/advances", h.createAdvance)
	r.Get("/advances", h.listAdvances)
	r.Delete("/advances/{id}", h.deleteAdvance)

	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type collectorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(c *collector.Collector) collectorResponse {
	return collectorResponse{ID: c.ID, Name: c.Name, Contact: c.Contact, CreatedAt: c.CreatedAt}
}

type createCollectorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCollectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Add(r.Context(), req.Name, req.Contact)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	collectors, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]collectorResponse, len(collectors))
	for i, c := range collectors {
		resp[i] = toResponse(c)
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

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, collector.ErrNotFound) {
			http.Error(w, "collector not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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

type rateResponse struct {
	ID            uuid.UUID       `json:"id"`
	CollectorID   uuid.UUID       `json:"collector_id"`
	CollectorName string          `json:"collector_name,omitempty"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Rate          decimal.Decimal `json:"rate"`
}

type setRateRequest struct {
	CollectorID uuid.UUID       `json:"collector_id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Rate        decimal.Decimal `json:"rate"`
}

type setRateResponse struct {
	Rate     rateResponse `json:"rate"`
	Repriced int64        `json:"repriced"`
}

func (h *Handler) setRate(w http.ResponseWriter, r *http.Request) {
	var req setRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rate, repriced, err := h.svc.SetRate(r.Context(), req.CollectorID, req.Month, req.Year, req.Rate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := setRateResponse{
		Rate: rateResponse{
			ID:          rate.ID,
			CollectorID: rate.CollectorID,
			Month:       rate.Month,
			Year:        rate.Year,
			Rate:        rate.Rate,
		},
		Repriced: repriced,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listRates(w http.ResponseWriter, r *http.Request) {
	filter := collector.RateFilter{}

	if s := r.URL.Query().Get("collector_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CollectorID = &id
		}
	}

	if s := r.URL.Query().Get("year"); s != "" {
		if year, err := strconv.Atoi(s); err == nil {
			filter.Year = &year
		}
	}

	rates, err := h.svc.Rates(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]rateResponse, len(rates))
	for i, rt := range rates {
		resp[i] = rateResponse{
			ID:            rt.ID,
			CollectorID:   rt.CollectorID,
			CollectorName: rt.CollectorName,
			Month:         rt.Month,
			Year:          rt.Year,
			Rate:          rt.Rate,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type advanceResponse struct {
	ID            uuid.UUID       `json:"id"`
	CollectorID   uuid.UUID       `json:"collector_id"`
	CollectorName string          `json:"collector_name,omitempty"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toAdvanceResponse(a *collector.Advance) advanceResponse {
	return advanceResponse{
		ID:            a.ID,
		CollectorID:   a.CollectorID,
		CollectorName: a.CollectorName,
		Date:          a.Date,
		Amount:        a.Amount,
		Description:   a.Description,
		CreatedAt:     a.CreatedAt,
	}
}

type createAdvanceRequest struct {
	CollectorID uuid.UUID       `json:"collector_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (h *Handler) createAdvance(w http.ResponseWriter, r *http.Request) {
	var req createAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.RecordAdvance(r.Context(), req.CollectorID, req.Date, req.Amount, req.Description)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toAdvanceResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listAdvances(w http.ResponseWriter, r *http.Request) {
	filter := collector.AdvanceFilter{}

	if s := r.URL.Query().Get("collector_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.CollectorID = &id
		}
	}

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

	advances, err := h.svc.Advances(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]advanceResponse, len(advances))
	for i, a := range advances {
		resp[i] = toAdvanceResponse(a)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteAdvance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteAdvance(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
