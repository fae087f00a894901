package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a stocked item available for sale and purchase.
// Price is the current list price; it also serves as the cost basis for
// COGS postings, a known simplification carried from the posting rules.
type Product struct {
	ProductID     string          `json:"productID"` // Primary key (UUID)
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"` // Unique
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CategoryID    string          `json:"categoryID,omitempty"` // Optional FK
	StoreID       string          `json:"storeID,omitempty"`    // Optional FK
	AuditFields
}

// Category groups products for stock views.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"` // Unique
}
