package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one account on the trial balance. For every account the
// running balance (opening + debits - credits) lands in the debit column
// when non-negative and in the credit column otherwise.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account plus the observed column totals.
// Equality of the totals is a consequence of balanced postings and is not
// asserted here.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount is an account with its computed balance for a statement.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatement reports revenue (credit-positive) against expenses
// (debit-positive).
type IncomeStatement struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheet reports assets (debit-positive) against liabilities and
// equity (credit-positive). TotalLiabilitiesEquity is their sum; no
// accounting-equation assertion is made against TotalAssets.
type BalanceSheet struct {
	Assets                 []AccountAmount `json:"assets"`
	Liabilities            []AccountAmount `json:"liabilities"`
	Equity                 []AccountAmount `json:"equity"`
	TotalAssets            decimal.Decimal `json:"totalAssets"`
	TotalLiabilities       decimal.Decimal `json:"totalLiabilities"`
	TotalEquity            decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesEquity decimal.Decimal `json:"totalLiabilitiesEquity"`
}

// AccountActivity is the raw per-account aggregate the report queries
// produce: the account joined with the summed debit and credit sides of
// all its journal lines. Balances are derived from this on demand; nothing
// is materialized.
type AccountActivity struct {
	Account Account         `json:"account"`
	Debits  decimal.Decimal `json:"debits"`
	Credits decimal.Decimal `json:"credits"`
}

// SalesSummary aggregates sales over a date range for the sales report.
type SalesSummary struct {
	SaleCount    int             `json:"saleCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// PurchaseSummary aggregates purchase orders over a date range.
type PurchaseSummary struct {
	OrderCount int             `json:"orderCount"`
	TotalCost  decimal.Decimal `json:"totalCost"`
}
