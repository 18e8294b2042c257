package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates the four expense shapes. Labor kinds reference an
// activity from the catalog and may carry hours worked; goods reference
// an inventory item; overheads are free-text with an implicit quantity
// of one.
type Kind string

const (
	KindLaborCost  Kind = "labor_cost"
	KindGoodsCost  Kind = "goods_cost"
	KindOverhead   Kind = "overhead"
	KindOwnerLabor Kind = "owner_labor"
)

// Kinds lists every expense kind in display order.
func Kinds() []Kind {
	return []Kind{KindLaborCost, KindGoodsCost, KindOverhead, KindOwnerLabor}
}

// Expense is one outgoing entry. TotalAmount is always quantity times
// rate, fixed at write time; expenses are never repriced. A nil FieldID
// marks an estate-wide overhead not attributable to any field.
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	FieldID     *uuid.UUID
	Kind        Kind
	CategoryID  *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	HoursWorked *decimal.Decimal
	Rate        decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	FieldName    string // loaded via JOIN
	CategoryName string // loaded via JOIN
}
