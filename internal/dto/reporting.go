package dto

import (
	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/utils"
)

// TrialBalanceRowResponse is one formatted row of the trial balance.
type TrialBalanceRowResponse struct {
	AccountName string `json:"accountName"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// TrialBalanceResponse is the formatted trial balance with its trailing
// Total row.
type TrialBalanceResponse struct {
	Rows  []TrialBalanceRowResponse `json:"rows"`
	Total TrialBalanceRowResponse   `json:"total"`
}

// AccountAmountResponse is one formatted statement line.
type AccountAmountResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IncomeStatementResponse is the formatted income statement.
type IncomeStatementResponse struct {
	Revenue       []AccountAmountResponse `json:"revenue"`
	Expenses      []AccountAmountResponse `json:"expenses"`
	TotalRevenue  string                  `json:"totalRevenue"`
	TotalExpenses string                  `json:"totalExpenses"`
	NetIncome     string                  `json:"netIncome"`
}

// BalanceSheetResponse is the formatted balance sheet.
type BalanceSheetResponse struct {
	Assets                 []AccountAmountResponse `json:"assets"`
	Liabilities            []AccountAmountResponse `json:"liabilities"`
	Equity                 []AccountAmountResponse `json:"equity"`
	TotalAssets            string                  `json:"totalAssets"`
	TotalLiabilities       string                  `json:"totalLiabilities"`
	TotalEquity            string                  `json:"totalEquity"`
	TotalLiabilitiesEquity string                  `json:"totalLiabilitiesEquity"`
}

// ToTrialBalanceResponse formats a trial balance report as currency strings.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountName: row.AccountName,
			Debit:       utils.FormatMoney(row.Debit),
			Credit:      utils.FormatMoney(row.Credit),
		}
	}
	return TrialBalanceResponse{
		Rows: rows,
		Total: TrialBalanceRowResponse{
			AccountName: "Total",
			Debit:       utils.FormatMoney(report.TotalDebit),
			Credit:      utils.FormatMoney(report.TotalCredit),
		},
	}
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	res := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		res[i] = AccountAmountResponse{Name: a.Name, Amount: utils.FormatMoney(a.Amount)}
	}
	return res
}

// ToIncomeStatementResponse formats an income statement as currency strings.
func ToIncomeStatementResponse(stmt *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		Revenue:       toAccountAmountResponses(stmt.Revenue),
		Expenses:      toAccountAmountResponses(stmt.Expenses),
		TotalRevenue:  utils.FormatMoney(stmt.TotalRevenue),
		TotalExpenses: utils.FormatMoney(stmt.TotalExpenses),
		NetIncome:     utils.FormatMoney(stmt.NetIncome),
	}
}

// ToBalanceSheetResponse formats a balance sheet as currency strings.
func ToBalanceSheetResponse(sheet *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:                 toAccountAmountResponses(sheet.Assets),
		Liabilities:            toAccountAmountResponses(sheet.Liabilities),
		Equity:                 toAccountAmountResponses(sheet.Equity),
		TotalAssets:            utils.FormatMoney(sheet.TotalAssets),
		TotalLiabilities:       utils.FormatMoney(sheet.TotalLiabilities),
		TotalEquity:            utils.FormatMoney(sheet.TotalEquity),
		TotalLiabilitiesEquity: utils.FormatMoney(sheet.TotalLiabilitiesEquity),
	}
}
