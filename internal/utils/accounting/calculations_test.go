package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/utils/accounting"
)

func line(accountID string, debit, credit float64) domain.JournalLine {
	return domain.JournalLine{
		AccountID: accountID,
		Debit:     decimal.NewFromFloat(debit),
		Credit:    decimal.NewFromFloat(credit),
	}
}

func TestValidateEntryBalance_Balanced(t *testing.T) {
	lines := []domain.JournalLine{
		line("cash", 100, 0),
		line("revenue", 0, 100),
	}
	assert.NoError(t, accounting.ValidateEntryBalance(lines))
}

func TestValidateEntryBalance_SplitLines(t *testing.T) {
	lines := []domain.JournalLine{
		line("cash", 60, 0),
		line("ar", 40, 0),
		line("revenue", 0, 100),
	}
	assert.NoError(t, accounting.ValidateEntryBalance(lines))
}

func TestValidateEntryBalance_WithinTolerance(t *testing.T) {
	// A residual below the tolerance threshold is accepted.
	lines := []domain.JournalLine{
		line("cash", 100.0005, 0),
		line("revenue", 0, 100),
	}
	assert.NoError(t, accounting.ValidateEntryBalance(lines))
}

func TestValidateEntryBalance_Unbalanced(t *testing.T) {
	lines := []domain.JournalLine{
		line("cash", 100, 0),
		line("revenue", 0, 90),
	}
	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
}

func TestValidateEntryBalance_NegativeAmount(t *testing.T) {
	lines := []domain.JournalLine{
		line("cash", -100, 0),
		line("revenue", 0, -100),
	}
	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntryBalance_Empty(t *testing.T) {
	err := accounting.ValidateEntryBalance(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRunningBalance_SignConventions(t *testing.T) {
	opening := decimal.NewFromInt(50)
	debits := decimal.NewFromInt(100)
	credits := decimal.NewFromInt(30)

	tests := []struct {
		accountType domain.AccountType
		expected    string
	}{
		{domain.Asset, "120"},     // 50 + 100 - 30
		{domain.Expense, "120"},   // debit-positive
		{domain.Liability, "-20"}, // 50 + 30 - 100
		{domain.Equity, "-20"},
		{domain.Revenue, "-20"}, // credit-positive
	}
	for _, tc := range tests {
		balance, err := accounting.RunningBalance(tc.accountType, opening, debits, credits)
		require.NoError(t, err, "type %s", tc.accountType)
		assert.Equal(t, tc.expected, balance.String(), "type %s", tc.accountType)
	}
}

func TestRunningBalance_UnknownType(t *testing.T) {
	_, err := accounting.RunningBalance("BOGUS", decimal.Zero, decimal.Zero, decimal.Zero)
	assert.Error(t, err)
}

func TestRawBalance(t *testing.T) {
	raw := accounting.RawBalance(decimal.NewFromInt(10), decimal.NewFromInt(5), decimal.NewFromInt(20))
	assert.Equal(t, "-5", raw.String())
}
