package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/expense"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type expenseResponse struct {
	ID           uuid.UUID        `json:"id"`
	Date         time.Time        `json:"date"`
	FieldID      *uuid.UUID       `json:"field_id,omitempty"`
	FieldName    string           `json:"field_name,omitempty"`
	Kind         expense.Kind     `json:"kind"`
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	Description  string           `json:"description,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	HoursWorked  *decimal.Decimal `json:"hours_worked,omitempty"`
	Rate         decimal.Decimal  `json:"rate"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		Date:         e.Date,
		FieldID:      e.FieldID,
		FieldName:    e.FieldName,
		Kind:         e.Kind,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Description:  e.Description,
		Quantity:     e.Quantity,
		HoursWorked:  e.HoursWorked,
		Rate:         e.Rate,
		TotalAmount:  e.TotalAmount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type createExpenseRequest struct {
	Date        time.Time        `json:"date"`
	FieldID     *uuid.UUID       `json:"field_id"`
	Kind        expense.Kind     `json:"kind"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	HoursWorked *decimal.Decimal `json:"hours_worked"`
	Rate        decimal.Decimal  `json:"rate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Record(r.Context(), expense.CreateParams{
		Date:        req.Date,
		FieldID:     req.FieldID,
		Kind:        req.Kind,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Quantity:    req.Quantity,
		HoursWorked: req.HoursWorked,
		Rate:        req.Rate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{}

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

	if s := r.URL.Query().Get("kind"); s != "" {
		kind := expense.Kind(s)
		filter.Kind = &kind
	}

	expenses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
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

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateExpenseRequest struct {
	Date        *time.Time       `json:"date,omitempty"`
	FieldID     *uuid.UUID       `json:"field_id,omitempty"`
	Description *string          `json:"description,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Date != nil {
		e.Date = *req.Date
	}

	if req.FieldID != nil {
		e.FieldID = req.FieldID
	}

	if req.Description != nil {
		e.Description = *req.Description
	}

	if req.Quantity != nil {
		e.Quantity = *req.Quantity
	}

	if req.HoursWorked != nil {
		e.HoursWorked = req.HoursWorked
	}

	if req.Rate != nil {
		e.Rate = *req.Rate
	}

	if err := h.svc.Update(r.Context(), e); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
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
