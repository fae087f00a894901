package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	"github.com/tillworks/tilldesk/internal/seed"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNames(ctx context.Context, names []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filterType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, filterType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Cases ---

func TestEnsureDefaultAccounts_CreatesAllSeven(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	repo.On("FindAccountByName", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Times(7)
	repo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Times(7)

	outcomes := seed.EnsureDefaultAccounts(ctx, repo)

	require.Len(t, outcomes, 7)
	names := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		assert.True(t, o.Created, "account %s", o.Name)
		assert.False(t, o.Skipped)
		assert.NoError(t, o.Err)
		names = append(names, o.Name)
	}
	assert.Contains(t, names, domain.AccountCash)
	assert.Contains(t, names, domain.AccountSalesRevenue)
	assert.Contains(t, names, domain.AccountCostOfGoodsSold)
	assert.Contains(t, names, domain.AccountInventory)
	assert.Contains(t, names, domain.AccountAccountsPayable)
	assert.Contains(t, names, domain.AccountAccountsReceivable)
	assert.Contains(t, names, domain.AccountOwnersEquity)
	repo.AssertExpectations(t)
}

func TestEnsureDefaultAccounts_ExistingAccountsSkipped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	repo.On("FindAccountByName", ctx, domain.AccountCash).Return(&domain.Account{
		AccountID: "existing-cash", Name: domain.AccountCash, AccountType: domain.Asset,
	}, nil).Once()
	repo.On("FindAccountByName", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound)
	repo.On("SaveAccount", ctx, mock.Anything).Return(nil)

	outcomes := seed.EnsureDefaultAccounts(ctx, repo)

	require.Len(t, outcomes, 7)
	for _, o := range outcomes {
		if o.Name == domain.AccountCash {
			assert.True(t, o.Skipped)
			assert.False(t, o.Created)
		} else {
			assert.True(t, o.Created)
		}
		assert.NoError(t, o.Err)
	}
	repo.AssertNotCalled(t, "SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == domain.AccountCash
	}))
}

func TestEnsureDefaultAccounts_InsertRaceTreatedAsSkipped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	repo.On("FindAccountByName", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Times(7)
	repo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == domain.AccountCash
	})).Return(apperrors.ErrDuplicate).Once()
	repo.On("SaveAccount", ctx, mock.Anything).Return(nil)

	outcomes := seed.EnsureDefaultAccounts(ctx, repo)

	require.Len(t, outcomes, 7)
	for _, o := range outcomes {
		if o.Name == domain.AccountCash {
			assert.True(t, o.Skipped)
		} else {
			assert.True(t, o.Created)
		}
		assert.NoError(t, o.Err)
	}
}

func TestEnsureDefaultAccounts_FailureDoesNotStopTheRest(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	repo.On("FindAccountByName", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Times(7)
	repo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Name == domain.AccountInventory
	})).Return(assert.AnError).Once()
	repo.On("SaveAccount", ctx, mock.Anything).Return(nil)

	outcomes := seed.EnsureDefaultAccounts(ctx, repo)

	require.Len(t, outcomes, 7)
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			assert.Equal(t, domain.AccountInventory, o.Name)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestEnsureDefaultAccounts_AuditFieldsUseSystemUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	repo.On("FindAccountByName", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound).Times(7)
	repo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.CreatedBy == seed.SystemUserID && acc.LastUpdatedBy == seed.SystemUserID && acc.OpeningBalance.IsZero()
	})).Return(nil).Times(7)

	seed.EnsureDefaultAccounts(ctx, repo)

	repo.AssertExpectations(t)
}
