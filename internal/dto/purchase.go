package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// POLineRequest is one product line of a purchase order to complete.
type POLineRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	CostPerUnit decimal.Decimal `json:"costPerUnit" binding:"required"`
}

// CompletePORequest defines a purchase order to complete.
type CompletePORequest struct {
	SupplierID string          `json:"supplierID" binding:"required"`
	Lines      []POLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ListPOParams bounds the purchase-order listing by a date range.
type ListPOParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// POItemResponse defines the data returned for a purchase-order item.
type POItemResponse struct {
	POItemID    string          `json:"poItemID"`
	ProductID   string          `json:"productID"`
	Quantity    int             `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
}

// POResponse defines the data returned for a completed purchase order.
type POResponse struct {
	POID          string           `json:"poID"`
	PONumber      int64            `json:"poNumber"`
	SupplierID    string           `json:"supplierID"`
	OrderDate     time.Time        `json:"orderDate"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	Items         []POItemResponse `json:"items,omitempty"`
	LedgerWarning string           `json:"ledgerWarning,omitempty"`
}

// PurchaseReportResponse aggregates purchase orders over a date range.
type PurchaseReportResponse struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OrderCount     int             `json:"orderCount"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	FormattedTotal string          `json:"formattedTotal"`
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contactInfo"`
}

// UpdateSupplierRequest overwrites a supplier's fields.
type UpdateSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contactInfo"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID  string `json:"supplierID"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

// ToPOItemResponses converts purchase-order items to response DTOs.
func ToPOItemResponses(items []domain.PurchaseOrderItem) []POItemResponse {
	res := make([]POItemResponse, len(items))
	for i, it := range items {
		res[i] = POItemResponse{
			POItemID:    it.POItemID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			CostPerUnit: it.CostPerUnit,
		}
	}
	return res
}

// ToPOResponse converts a domain.PurchaseOrder to its response DTO.
func ToPOResponse(po *domain.PurchaseOrder) POResponse {
	resp := POResponse{
		POID:        po.POID,
		PONumber:    po.PONumber,
		SupplierID:  po.SupplierID,
		OrderDate:   po.OrderDate,
		TotalAmount: po.TotalAmount,
	}
	if len(po.Items) > 0 {
		resp.Items = ToPOItemResponses(po.Items)
	}
	return resp
}

// ToPOResponses converts a slice of purchase orders to response DTOs.
func ToPOResponses(orders []domain.PurchaseOrder) []POResponse {
	res := make([]POResponse, len(orders))
	for i := range orders {
		res[i] = ToPOResponse(&orders[i])
	}
	return res
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:  s.SupplierID,
		Name:        s.Name,
		ContactInfo: s.ContactInfo,
	}
}

// ToSupplierResponses converts a slice of suppliers to response DTOs.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		res[i] = ToSupplierResponse(&suppliers[i])
	}
	return res
}
