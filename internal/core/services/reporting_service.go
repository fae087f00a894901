package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/utils/accounting"
)

// reportingService computes financial reports. Every report re-aggregates
// the whole journal; nothing is cached between calls.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance lists every account under the uniform debit-positive
// convention: a non-negative raw balance lands in the debit column, a
// negative one lands (as its absolute value) in the credit column.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		Rows:        make([]domain.TrialBalanceRow, 0, len(activity)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, act := range activity {
		raw := accounting.RawBalance(act.Account.OpeningBalance, act.Debits, act.Credits)
		row := domain.TrialBalanceRow{
			AccountID:   act.Account.AccountID,
			AccountName: act.Account.Name,
			AccountType: act.Account.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if raw.IsNegative() {
			row.Credit = raw.Abs()
		} else {
			row.Debit = raw
		}
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// IncomeStatement reports revenue (credit-positive) against expenses
// (debit-positive), each computed with the per-type sign convention.
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	stmt := &domain.IncomeStatement{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, act := range activity {
		switch act.Account.AccountType {
		case domain.Revenue, domain.Expense:
		default:
			continue
		}
		balance, err := accounting.RunningBalance(act.Account.AccountType, act.Account.OpeningBalance, act.Debits, act.Credits)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for account %s: %w", act.Account.AccountID, err)
		}
		amount := domain.AccountAmount{
			AccountID: act.Account.AccountID,
			Name:      act.Account.Name,
			Amount:    balance,
		}
		if act.Account.AccountType == domain.Revenue {
			stmt.Revenue = append(stmt.Revenue, amount)
			stmt.TotalRevenue = stmt.TotalRevenue.Add(balance)
		} else {
			stmt.Expenses = append(stmt.Expenses, amount)
			stmt.TotalExpenses = stmt.TotalExpenses.Add(balance)
		}
	}
	stmt.NetIncome = stmt.TotalRevenue.Sub(stmt.TotalExpenses)
	return stmt, nil
}

// BalanceSheet reports assets against liabilities and equity. The combined
// liabilities-plus-equity total is reported as observed; no equation check
// is applied.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	activity, err := s.reportingRepo.GetAccountActivity(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	sheet := &domain.BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, act := range activity {
		switch act.Account.AccountType {
		case domain.Asset, domain.Liability, domain.Equity:
		default:
			continue
		}
		balance, err := accounting.RunningBalance(act.Account.AccountType, act.Account.OpeningBalance, act.Debits, act.Credits)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for account %s: %w", act.Account.AccountID, err)
		}
		amount := domain.AccountAmount{
			AccountID: act.Account.AccountID,
			Name:      act.Account.Name,
			Amount:    balance,
		}
		switch act.Account.AccountType {
		case domain.Asset:
			sheet.Assets = append(sheet.Assets, amount)
			sheet.TotalAssets = sheet.TotalAssets.Add(balance)
		case domain.Liability:
			sheet.Liabilities = append(sheet.Liabilities, amount)
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(balance)
		case domain.Equity:
			sheet.Equity = append(sheet.Equity, amount)
			sheet.TotalEquity = sheet.TotalEquity.Add(balance)
		}
	}
	sheet.TotalLiabilitiesEquity = sheet.TotalLiabilities.Add(sheet.TotalEquity)
	return sheet, nil
}
