package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Hasitha-J/tea-management/internal/ledger"
	"github.com/Hasitha-J/tea-management/internal/report"
	"github.com/Hasitha-J/tea-management/internal/report/render"
)

type Handler struct {
	compiler *report.Compiler
}

func NewHandler(compiler *report.Compiler) *Handler {
	return &Handler{compiler: compiler}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/full", h.full)
	r.Get("/download", h.download)
}

// period reads the start_date/end_date query parameters, defaulting to
// the current calendar month.
func period(r *http.Request) (ledger.Period, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return ledger.Period{}, fmt.Errorf("invalid start_date: %w", err)
		}

		start = t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return ledger.Period{}, fmt.Errorf("invalid end_date: %w", err)
		}

		end = t
	}

	return ledger.NewPeriod(start, end)
}

type summaryResponse struct {
	Summary    ledgerSummaryResponse `json:"summary"`
	Advisories []advisoryResponse    `json:"advisories"`
	Warnings   []string              `json:"warnings,omitempty"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	p, err := period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var fieldFilter *uuid.UUID

	if s := r.URL.Query().Get("field_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid field_id", http.StatusBadRequest)
			return
		}

		fieldFilter = &id
	}

	summary, advisories, err := h.compiler.Summarize(r.Context(), p, fieldFilter)
	if err != nil {
		writeCompileError(w, err)
		return
	}

	resp := summaryResponse{
		Summary:    toSummaryResponse(summary),
		Advisories: toAdvisoryResponses(advisories),
	}
	for _, warning := range summary.Warnings {
		resp.Warnings = append(resp.Warnings, warning.String())
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) full(w http.ResponseWriter, r *http.Request) {
	p, err := period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.compiler.Compile(r.Context(), p)
	if err != nil {
		writeCompileError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDocumentResponse(doc)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	p, err := period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	doc, err := h.compiler.Compile(r.Context(), p)
	if err != nil {
		writeCompileError(w, err)
		return
	}

	// Render into memory first so a render failure still produces a
	// clean error response instead of a truncated download.
	var buf bytes.Buffer

	var contentType string

	switch format {
	case "csv":
		contentType = "text/csv"
		err = render.CSV(&buf, doc)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = render.XLSX(&buf, doc)
	default:
		http.Error(w, "format must be csv or xlsx", http.StatusBadRequest)
		return
	}

	if err != nil {
		slog.Error("failed to render report", "format", format, "error", err)
		http.Error(w, "failed to render report", http.StatusInternalServerError)

		return
	}

	filename := fmt.Sprintf("estate-report-%s-%s.%s",
		p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly), format)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write report download", "error", err)
	}
}

func writeCompileError(w http.ResponseWriter, err error) {
	var fetchErr *report.FetchError
	if errors.As(err, &fetchErr) {
		http.Error(w, fetchErr.Error(), http.StatusBadGateway)
		return
	}

	if errors.Is(err, ledger.ErrInvalidPeriod) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
