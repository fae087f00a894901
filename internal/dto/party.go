package dto

import (
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateCustomerRequest overwrites a customer's fields.
type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// CreateStoreRequest defines the data needed to create a store.
type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// StoreResponse defines the data returned for a store.
type StoreResponse struct {
	StoreID string `json:"storeID"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
	}
}

// ToCustomerResponses converts a slice of customers to response DTOs.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// ToStoreResponse converts a domain.Store to its response DTO.
func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		StoreID: s.StoreID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
	}
}

// ToStoreResponses converts a slice of stores to response DTOs.
func ToStoreResponses(stores []domain.Store) []StoreResponse {
	res := make([]StoreResponse, len(stores))
	for i := range stores {
		res[i] = ToStoreResponse(&stores[i])
	}
	return res
}
