// Package catalog holds the two lookup tables used to pre-fill expense
// entries: labor activities and inventory items, each with a default
// unit rate.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Activity is a labor activity (plucking, pruning, weeding, ...) with
// its default day/hour rate.
type Activity struct {
	ID          uuid.UUID
	Name        string
	DefaultRate decimal.Decimal
}

// InventoryItem is a purchasable good (fertilizer, fuel, tools, ...)
// with its default unit rate.
type InventoryItem struct {
	ID          uuid.UUID
	Name        string
	DefaultRate decimal.Decimal
}
