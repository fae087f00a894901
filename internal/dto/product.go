package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Barcode       string          `json:"barcode" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stockQuantity" binding:"min=0"`
	CategoryID    string          `json:"categoryID"`
	StoreID       string          `json:"storeID"`
}

// UpdateProductRequest overwrites a product's mutable fields.
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Barcode       string          `json:"barcode" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stockQuantity" binding:"min=0"`
	CategoryID    string          `json:"categoryID"`
	StoreID       string          `json:"storeID"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Search string `form:"search"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CategoryID    string          `json:"categoryID,omitempty"`
	StoreID       string          `json:"storeID,omitempty"`
}

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Barcode:       p.Barcode,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		StoreID:       p.StoreID,
	}
}

// ToProductResponses converts a slice of products to response DTOs.
func ToProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ToCategoryResponses converts a slice of categories to response DTOs.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = CategoryResponse{CategoryID: cat.CategoryID, Name: cat.Name}
	}
	return res
}
