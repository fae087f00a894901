package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a purchasing counterparty. Names are unique.
type Supplier struct {
	SupplierID  string `json:"supplierID"` // Primary key (UUID)
	Name        string `json:"name"`       // Unique
	ContactInfo string `json:"contactInfo"`
	AuditFields
}

// PurchaseOrder is a completed stock purchase from a supplier.
// PONumber is the human-facing sequential number used in journal descriptions.
type PurchaseOrder struct {
	POID        string              `json:"poID"` // Primary key (UUID)
	PONumber    int64               `json:"poNumber"`
	SupplierID  string              `json:"supplierID"`
	OrderDate   time.Time           `json:"orderDate"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Items       []PurchaseOrderItem `json:"items,omitempty"`
	AuditFields
}

// PurchaseOrderItem is one product line on a purchase order.
type PurchaseOrderItem struct {
	POItemID    string          `json:"poItemID"`
	POID        string          `json:"poID"`
	ProductID   string          `json:"productID"`
	Quantity    int             `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
}

// LineTotal is quantity times unit cost.
func (i PurchaseOrderItem) LineTotal() decimal.Decimal {
	return i.CostPerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
