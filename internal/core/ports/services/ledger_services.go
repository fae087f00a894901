package services

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/dto"
)

// AccountSvcFacade manages the chart of accounts.
type AccountSvcFacade interface {
	// CreateAccount persists a new ledger account. Fails with
	// apperrors.ErrDuplicate when the name is already taken.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount overwrites an account's name, type and opening balance.
	// Type changes retroactively affect historical reports.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts, optionally filtered by type.
	ListAccounts(ctx context.Context, filterType *domain.AccountType) ([]domain.Account, error)
}

// JournalSvcFacade validates and persists balanced journal entries.
type JournalSvcFacade interface {
	// PostEntry validates that the entry's lines balance within tolerance
	// and that every referenced account exists, then persists the entry and
	// its lines atomically. Fails with apperrors.ErrUnbalanced or
	// apperrors.ErrMissingAccount; nothing is persisted on failure.
	PostEntry(ctx context.Context, req dto.PostEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries ordered by date descending, optionally
	// bounded by a date range.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)

	// EntryLines retrieves the ordered lines of an entry for display/audit.
	EntryLines(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// PostingSvcFacade derives journal entries from completed business events.
type PostingSvcFacade interface {
	// PostSale records the two sale entries: Cash/Sales Revenue for the
	// sale total and COGS/Inventory for the cost basis. Fails with
	// apperrors.ErrMissingAccount when any required account is absent, in
	// which case no entry is written.
	PostSale(ctx context.Context, sale *domain.Sale, userID string) error

	// PostPurchaseOrder records the Inventory/Accounts Payable entry for a
	// completed purchase order.
	PostPurchaseOrder(ctx context.Context, po *domain.PurchaseOrder, userID string) error
}

// ReportingSvcFacade computes financial reports from the account registry
// and the journal. Balances are recomputed from scratch per call.
type ReportingSvcFacade interface {
	// TrialBalance lists every account's running balance split into debit
	// and credit columns with a trailing total.
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)

	// IncomeStatement reports revenue against expenses with net income.
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)

	// BalanceSheet reports assets against liabilities and equity.
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)
}
