package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a ledger account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,accounttype"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// UpdateAccountRequest overwrites all three mutable fields of an account.
type UpdateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,accounttype"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// AccountResponse defines the data returned for a ledger account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Type string `form:"type"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		OpeningBalance: acc.OpeningBalance,
	}
}

// ToAccountResponses converts a slice of accounts to response DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
