package harvest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/harvest"
)

type harvestResponse struct {
	ID            uuid.UUID        `json:"id"`
	Date          time.Time        `json:"date"`
	FieldID       *uuid.UUID       `json:"field_id,omitempty"`
	FieldName     string           `json:"field_name,omitempty"`
	Crop          harvest.Crop     `json:"crop"`
	Weight        decimal.Decimal  `json:"weight"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	CollectorID   *uuid.UUID       `json:"collector_id,omitempty"`
	CollectorName string           `json:"collector_name,omitempty"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	RatePending   bool             `json:"rate_pending"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(h *harvest.Harvest) harvestResponse {
	return harvestResponse{
		ID:            h.ID,
		Date:          h.Date,
		FieldID:       h.FieldID,
		FieldName:     h.FieldName,
		Crop:          h.Crop,
		Weight:        h.Weight,
		Rate:          h.Rate,
		CollectorID:   h.CollectorID,
		CollectorName: h.CollectorName,
		TotalAmount:   h.TotalAmount,
		RatePending:   h.Crop == harvest.CropTea && h.CollectorID != nil && !h.Priced(),
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func toResponseList(harvests []*harvest.Harvest) []harvestResponse {
	resp := make([]harvestResponse, len(harvests))
	for i, h := range harvests {
		resp[i] = toResponse(h)
	}

	return resp
}
