package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hasitha-J/tea-management/internal/ledger"
	"github.com/Hasitha-J/tea-management/internal/report"
)

type fieldSummaryResponse struct {
	FieldID      *uuid.UUID      `json:"field_id,omitempty"`
	FieldName    string          `json:"field_name"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

type ledgerSummaryResponse struct {
	StartDate    time.Time              `json:"start_date"`
	EndDate      time.Time              `json:"end_date"`
	Fields       []fieldSummaryResponse `json:"fields"`
	General      fieldSummaryResponse   `json:"general"`
	TotalIncome  decimal.Decimal        `json:"total_income"`
	TotalExpense decimal.Decimal        `json:"total_expense"`
	NetProfit    decimal.Decimal        `json:"net_profit"`
}

type advisoryResponse struct {
	CollectorID   uuid.UUID `json:"collector_id"`
	CollectorName string    `json:"collector_name"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Harvests      int       `json:"harvests"`
}

func toFieldSummary(fs ledger.FieldSummary) fieldSummaryResponse {
	return fieldSummaryResponse{
		FieldID:      fs.FieldID,
		FieldName:    fs.FieldName,
		TotalIncome:  fs.TotalIncome,
		TotalExpense: fs.TotalExpense,
		NetProfit:    fs.NetProfit,
	}
}

func toSummaryResponse(s *ledger.Summary) ledgerSummaryResponse {
	resp := ledgerSummaryResponse{
		StartDate:    s.Period.Start,
		EndDate:      s.Period.End,
		Fields:       make([]fieldSummaryResponse, len(s.Fields)),
		General:      toFieldSummary(s.General),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		NetProfit:    s.NetProfit,
	}

	for i, fs := range s.Fields {
		resp.Fields[i] = toFieldSummary(fs)
	}

	return resp
}

func toAdvisoryResponses(advisories []ledger.RateAdvisory) []advisoryResponse {
	resp := make([]advisoryResponse, len(advisories))
	for i, a := range advisories {
		resp[i] = advisoryResponse{
			CollectorID:   a.CollectorID,
			CollectorName: a.CollectorName,
			Month:         a.Month,
			Year:          a.Year,
			Harvests:      a.Harvests,
		}
	}

	return resp
}

type cropRowResponse struct {
	Crop         string          `json:"crop"`
	TotalWeight  decimal.Decimal `json:"total_weight"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type expenseKindRowResponse struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

type collectorRowResponse struct {
	CollectorID   uuid.UUID       `json:"collector_id"`
	Name          string          `json:"name"`
	TotalWeight   decimal.Decimal `json:"total_weight"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
	Balance       decimal.Decimal `json:"balance"`
}

type logEntryResponse struct {
	Date      time.Time       `json:"date"`
	Kind      string          `json:"kind"`
	FieldName string          `json:"field_name"`
	Details   string          `json:"details"`
	Amount    decimal.Decimal `json:"amount"`
}

type documentResponse struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	GeneratedAt time.Time `json:"generated_at"`

	Summary      ledgerSummaryResponse    `json:"summary"`
	Crops        []cropRowResponse        `json:"crops"`
	ExpenseKinds []expenseKindRowResponse `json:"expense_kinds"`
	Collectors   []collectorRowResponse   `json:"collectors"`
	Log          []logEntryResponse       `json:"log"`
	Advisories   []advisoryResponse       `json:"advisories"`
	Skipped      int                      `json:"skipped"`
	Warnings     []string                 `json:"warnings,omitempty"`
}

func toDocumentResponse(doc *report.Document) documentResponse {
	resp := documentResponse{
		StartDate:    doc.Period.Start,
		EndDate:      doc.Period.End,
		GeneratedAt:  doc.GeneratedAt,
		Summary:      toSummaryResponse(doc.Summary),
		Crops:        make([]cropRowResponse, len(doc.Crops)),
		ExpenseKinds: make([]expenseKindRowResponse, len(doc.ExpenseKinds)),
		Collectors:   make([]collectorRowResponse, len(doc.Collectors)),
		Log:          make([]logEntryResponse, len(doc.Log)),
		Advisories:   toAdvisoryResponses(doc.Advisories),
		Skipped:      doc.Skipped,
	}

	for i, c := range doc.Crops {
		resp.Crops[i] = cropRowResponse{
			Crop:         string(c.Crop),
			TotalWeight:  c.TotalWeight,
			TotalRevenue: c.TotalRevenue,
		}
	}

	for i, e := range doc.ExpenseKinds {
		resp.ExpenseKinds[i] = expenseKindRowResponse{Kind: string(e.Kind), Amount: e.Amount}
	}

	for i, c := range doc.Collectors {
		resp.Collectors[i] = collectorRowResponse{
			CollectorID:   c.CollectorID,
			Name:          c.Name,
			TotalWeight:   c.TotalWeight,
			TotalRevenue:  c.TotalRevenue,
			TotalAdvances: c.TotalAdvances,
			Balance:       c.Balance,
		}
	}

	for i, e := range doc.Log {
		resp.Log[i] = logEntryResponse{
			Date:      e.Date,
			Kind:      string(e.Kind),
			FieldName: e.FieldName,
			Details:   e.Details,
			Amount:    e.Amount,
		}
	}

	for _, w := range doc.Summary.Warnings {
		resp.Warnings = append(resp.Warnings, w.String())
	}

	return resp
}
