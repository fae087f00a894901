package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAccountActivity(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountActivity), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func activity(name string, accountType domain.AccountType, opening, debits, credits int64) domain.AccountActivity {
	return domain.AccountActivity{
		Account: domain.Account{
			AccountID:      uuid.NewString(),
			Name:           name,
			AccountType:    accountType,
			OpeningBalance: decimal.NewFromInt(opening),
		},
		Debits:  decimal.NewFromInt(debits),
		Credits: decimal.NewFromInt(credits),
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_SplitsByRawSign() {
	ctx := context.Background()
	suite.mockRepo.On("GetAccountActivity", ctx, mock.AnythingOfType("time.Time")).Return([]domain.AccountActivity{
		activity(domain.AccountCash, domain.Asset, 0, 150, 50),          // raw +100 -> debit
		activity(domain.AccountSalesRevenue, domain.Revenue, 0, 0, 150), // raw -150 -> credit
		activity(domain.AccountInventory, domain.Asset, 50, 0, 0),       // opening only -> debit
	}, nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 3)

	suite.True(report.Rows[0].Debit.Equal(decimal.NewFromInt(100)))
	suite.True(report.Rows[0].Credit.IsZero())
	suite.True(report.Rows[1].Debit.IsZero())
	suite.True(report.Rows[1].Credit.Equal(decimal.NewFromInt(150)))
	suite.True(report.Rows[2].Debit.Equal(decimal.NewFromInt(50)))

	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(150)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(150)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("GetAccountActivity", ctx, mock.AnythingOfType("time.Time")).Return([]domain.AccountActivity{}, nil).Once()

	report, err := suite.service.TrialBalance(ctx)

	suite.Require().NoError(err)
	suite.Empty(report.Rows)
	suite.True(report.TotalDebit.IsZero())
	suite.True(report.TotalCredit.IsZero())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement() {
	ctx := context.Background()
	suite.mockRepo.On("GetAccountActivity", ctx, mock.AnythingOfType("time.Time")).Return([]domain.AccountActivity{
		activity(domain.AccountCash, domain.Asset, 0, 500, 0), // ignored
		activity(domain.AccountSalesRevenue, domain.Revenue, 0, 0, 500),
		activity(domain.AccountCostOfGoodsSold, domain.Expense, 0, 300, 0),
	}, nil).Once()

	stmt, err := suite.service.IncomeStatement(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(stmt.Revenue, 1)
	suite.Require().Len(stmt.Expenses, 1)
	suite.True(stmt.Revenue[0].Amount.Equal(decimal.NewFromInt(500)))
	suite.True(stmt.Expenses[0].Amount.Equal(decimal.NewFromInt(300)))
	suite.True(stmt.TotalRevenue.Equal(decimal.NewFromInt(500)))
	suite.True(stmt.TotalExpenses.Equal(decimal.NewFromInt(300)))
	suite.True(stmt.NetIncome.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	suite.mockRepo.On("GetAccountActivity", ctx, mock.AnythingOfType("time.Time")).Return([]domain.AccountActivity{
		activity(domain.AccountCash, domain.Asset, 0, 1000, 200),
		activity(domain.AccountAccountsPayable, domain.Liability, 0, 0, 300),
		activity(domain.AccountOwnersEquity, domain.Equity, 0, 0, 500),
		activity(domain.AccountSalesRevenue, domain.Revenue, 0, 0, 999), // ignored
	}, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(sheet.Assets, 1)
	suite.Require().Len(sheet.Liabilities, 1)
	suite.Require().Len(sheet.Equity, 1)
	suite.True(sheet.TotalAssets.Equal(decimal.NewFromInt(800)))
	suite.True(sheet.TotalLiabilities.Equal(decimal.NewFromInt(300)))
	suite.True(sheet.TotalEquity.Equal(decimal.NewFromInt(500)))
	suite.True(sheet.TotalLiabilitiesEquity.Equal(decimal.NewFromInt(800)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("GetAccountActivity", ctx, mock.AnythingOfType("time.Time")).Return(nil, assert.AnError).Once()

	_, err := suite.service.TrialBalance(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
