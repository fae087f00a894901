package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// SaleLineRequest is one product line of a sale to complete. The unit
// price is captured from the product's current list price at sale time.
type SaleLineRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CompleteSaleRequest defines a point-of-sale transaction to complete.
type CompleteSaleRequest struct {
	Lines      []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
	CustomerID string            `json:"customerID"`
	StoreID    string            `json:"storeID"`
}

// ListSalesParams bounds the sale listing by an inclusive date range.
type ListSalesParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// SaleItemResponse defines the data returned for a sale item.
type SaleItemResponse struct {
	SaleItemID   string          `json:"saleItemID"`
	ProductID    string          `json:"productID"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// SaleResponse defines the data returned for a completed sale. When the
// automated ledger posting could not run, LedgerWarning carries the reason;
// the sale itself has still completed.
type SaleResponse struct {
	SaleID        string             `json:"saleID"`
	SaleNumber    int64              `json:"saleNumber"`
	SaleDate      time.Time          `json:"saleDate"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	CustomerID    string             `json:"customerID,omitempty"`
	StoreID       string             `json:"storeID,omitempty"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	LedgerWarning string             `json:"ledgerWarning,omitempty"`
}

// SalesReportResponse aggregates sales over a date range.
type SalesReportResponse struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	SaleCount      int             `json:"saleCount"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	FormattedTotal string          `json:"formattedTotal"`
}

// ToSaleItemResponses converts sale items to response DTOs.
func ToSaleItemResponses(items []domain.SaleItem) []SaleItemResponse {
	res := make([]SaleItemResponse, len(items))
	for i, it := range items {
		res[i] = SaleItemResponse{
			SaleItemID:   it.SaleItemID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			PricePerUnit: it.PricePerUnit,
		}
	}
	return res
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	resp := SaleResponse{
		SaleID:      s.SaleID,
		SaleNumber:  s.SaleNumber,
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		CustomerID:  s.CustomerID,
		StoreID:     s.StoreID,
	}
	if len(s.Items) > 0 {
		resp.Items = ToSaleItemResponses(s.Items)
	}
	return resp
}

// ToSaleResponses converts a slice of sales to response DTOs.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}
