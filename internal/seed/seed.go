// Package seed installs the default chart of accounts the automated
// posting rules depend on.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	"github.com/tillworks/tilldesk/internal/middleware"
)

// SystemUserID marks rows created by startup seeding rather than a person.
const SystemUserID = "system"

// Outcome describes what happened to one default account during seeding.
type Outcome struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
	Skipped bool   `json:"skipped"`
	Err     error  `json:"-"`
}

var defaultAccounts = []struct {
	name        string
	accountType domain.AccountType
}{
	{domain.AccountCash, domain.Asset},
	{domain.AccountAccountsReceivable, domain.Asset},
	{domain.AccountInventory, domain.Asset},
	{domain.AccountSalesRevenue, domain.Revenue},
	{domain.AccountCostOfGoodsSold, domain.Expense},
	{domain.AccountAccountsPayable, domain.Liability},
	{domain.AccountOwnersEquity, domain.Equity},
}

// EnsureDefaultAccounts creates any missing default account with a zero
// opening balance. Existing accounts are left untouched, so the call is
// idempotent and safe on every startup. One failing account does not stop
// the rest; each outcome is reported individually.
func EnsureDefaultAccounts(ctx context.Context, accountRepo portsrepo.AccountRepositoryFacade) []Outcome {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	outcomes := make([]Outcome, 0, len(defaultAccounts))
	for _, def := range defaultAccounts {
		outcome := Outcome{Name: def.name}

		if _, err := accountRepo.FindAccountByName(ctx, def.name); err == nil {
			outcome.Skipped = true
			outcomes = append(outcomes, outcome)
			continue
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			logger.Error("failed to check default account", "name", def.name, "error", err)
			continue
		}

		account := domain.Account{
			AccountID:      uuid.NewString(),
			Name:           def.name,
			AccountType:    def.accountType,
			OpeningBalance: decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     SystemUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: SystemUserID,
			},
		}
		err := accountRepo.SaveAccount(ctx, account)
		switch {
		case err == nil:
			outcome.Created = true
			logger.Info("default account created", "name", def.name, "type", def.accountType)
		case errors.Is(err, apperrors.ErrDuplicate):
			outcome.Skipped = true
		default:
			outcome.Err = err
			logger.Error("failed to seed default account", "name", def.name, "error", err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}
