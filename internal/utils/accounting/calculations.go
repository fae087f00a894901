// Package accounting holds the sign conventions and balance checks shared
// by the journal engine and the report aggregator.
package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// ValidateEntryBalance checks that the debit and credit totals of the lines
// match within domain.BalanceTolerance and that no line carries a negative
// amount. It does not reject lines with both debit and credit set.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: entry must have at least one line", apperrors.ErrValidation)
	}

	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: debit and credit must be non-negative for account %s", apperrors.ErrValidation, line.AccountID)
		}
	}

	debits := domain.DebitTotal(lines)
	credits := domain.CreditTotal(lines)
	if debits.Sub(credits).Abs().GreaterThan(domain.BalanceTolerance) {
		return fmt.Errorf("%w: debits total %s, credits total %s", apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// RunningBalance computes an account's point-in-time balance from its
// opening balance and the raw debit/credit sums of its journal lines.
// The sign convention flips by account type: Asset and Expense accounts
// increase with debits, Liability, Equity and Revenue accounts increase
// with credits.
func RunningBalance(accountType domain.AccountType, openingBalance, debits, credits decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return openingBalance.Add(debits).Sub(credits), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return openingBalance.Add(credits).Sub(debits), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q", accountType)
	}
}

// RawBalance computes the debit-positive balance used by the trial balance,
// where every account is treated uniformly: opening + debits - credits.
func RawBalance(openingBalance, debits, credits decimal.Decimal) decimal.Decimal {
	return openingBalance.Add(debits).Sub(credits)
}
