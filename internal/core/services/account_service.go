// Package services implements the core business logic behind the service
// facades.
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
)

// accountService manages the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new ledger account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("failed to create account", "name", req.Name, "error", err)
		return nil, err
	}
	logger.Info("account created", "accountID", account.AccountID, "name", account.Name)
	return &account, nil
}

// UpdateAccount overwrites an account's name, type and opening balance.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.Name = req.Name
	account.AccountType = req.AccountType
	account.OpeningBalance = req.OpeningBalance
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("failed to update account", "accountID", accountID, "error", err)
		return nil, err
	}
	return account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves all accounts, optionally filtered by type.
func (s *accountService) ListAccounts(ctx context.Context, filterType *domain.AccountType) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, filterType)
}
