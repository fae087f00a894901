package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every valid account type, in report order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValidAccountType reports whether t is one of the five ledger account types.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Default account names required by the automated posting rules.
const (
	AccountCash               = "Cash"
	AccountAccountsReceivable = "Accounts Receivable"
	AccountInventory          = "Inventory"
	AccountSalesRevenue       = "Sales Revenue"
	AccountCostOfGoodsSold    = "Cost of Goods Sold"
	AccountAccountsPayable    = "Accounts Payable"
	AccountOwnersEquity       = "Owner's Equity"
)

// Account represents one entry in the chart of accounts.
// Names are unique; accounts are never deleted in the normal flow.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary key (UUID)
	Name           string          `json:"name"`           // Unique account name
	AccountType    AccountType     `json:"accountType"`    // ASSET, LIABILITY, etc.
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Signed; debit-positive convention
	AuditFields
}
