package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed point-of-sale transaction. SaleNumber is the
// human-facing sequential receipt number used in journal descriptions.
type Sale struct {
	SaleID      string          `json:"saleID"` // Primary key (UUID)
	SaleNumber  int64           `json:"saleNumber"`
	SaleDate    time.Time       `json:"saleDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CustomerID  string          `json:"customerID,omitempty"` // Optional FK
	StoreID     string          `json:"storeID,omitempty"`    // Optional FK
	Items       []SaleItem      `json:"items,omitempty"`
	AuditFields
}

// SaleItem is one product line on a sale, priced at sale time.
type SaleItem struct {
	SaleItemID   string          `json:"saleItemID"`
	SaleID       string          `json:"saleID"`
	ProductID    string          `json:"productID"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// LineTotal is quantity times unit price.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.PricePerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
