package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/core/services"
)

// --- Mock ProductReader ---
type MockProductReader struct {
	mock.Mock
}

var _ portsrepo.ProductReader = (*MockProductReader)(nil)

func (m *MockProductReader) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductReader) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductReader) ListProducts(ctx context.Context, nameSearch string) ([]domain.Product, error) {
	args := m.Called(ctx, nameSearch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductReader) ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductReader) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountReader
	mockProductRepo *MockProductReader
	service         portssvc.PostingSvcFacade
	accounts        map[string]domain.Account
	savedEntries    []domain.JournalEntry
	userID          string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountReader)
	suite.mockProductRepo = new(MockProductReader)
	suite.service = services.NewPostingService(suite.mockJournalRepo, suite.mockAccountRepo, suite.mockProductRepo)

	suite.userID = uuid.NewString()
	suite.savedEntries = nil

	suite.accounts = map[string]domain.Account{}
	for name, accountType := range map[string]domain.AccountType{
		domain.AccountCash:            domain.Asset,
		domain.AccountSalesRevenue:    domain.Revenue,
		domain.AccountCostOfGoodsSold: domain.Expense,
		domain.AccountInventory:       domain.Asset,
		domain.AccountAccountsPayable: domain.Liability,
	} {
		suite.accounts[name] = domain.Account{
			AccountID:   uuid.NewString(),
			Name:        name,
			AccountType: accountType,
		}
	}
}

// captureSaves records every entry handed to SaveEntry so tests can
// inspect what was posted.
func (suite *PostingServiceTestSuite) captureSaves() {
	suite.mockJournalRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			suite.savedEntries = append(suite.savedEntries, args.Get(1).(domain.JournalEntry))
		}).
		Return(nil)
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestPostSale_WritesRevenueAndCostEntries() {
	ctx := context.Background()
	productID := uuid.NewString()
	sale := &domain.Sale{
		SaleID:      uuid.NewString(),
		SaleNumber:  42,
		TotalAmount: decimal.NewFromInt(30),
		Items: []domain.SaleItem{
			{ProductID: productID, Quantity: 3, PricePerUnit: decimal.NewFromInt(10)},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByNames", ctx, mock.Anything).Return(suite.accounts, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{productID}).Return(map[string]domain.Product{
		productID: {ProductID: productID, Price: decimal.NewFromInt(10)},
	}, nil).Once()
	suite.captureSaves()

	err := suite.service.PostSale(ctx, sale, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.savedEntries, 2)

	revenue := suite.savedEntries[0]
	suite.Equal("Sale #42", revenue.Description)
	suite.Equal(domain.SourceSale, revenue.SourceType)
	suite.Equal(sale.SaleID, revenue.SourceID)
	suite.True(revenue.TotalAmount.Equal(decimal.NewFromInt(30)))
	suite.Require().Len(revenue.Lines, 2)
	suite.Equal(suite.accounts[domain.AccountCash].AccountID, revenue.Lines[0].AccountID)
	suite.True(revenue.Lines[0].Debit.Equal(decimal.NewFromInt(30)))
	suite.Equal(suite.accounts[domain.AccountSalesRevenue].AccountID, revenue.Lines[1].AccountID)
	suite.True(revenue.Lines[1].Credit.Equal(decimal.NewFromInt(30)))

	cost := suite.savedEntries[1]
	suite.Equal("COGS for Sale #42", cost.Description)
	suite.True(cost.TotalAmount.Equal(decimal.NewFromInt(30)))
	suite.Require().Len(cost.Lines, 2)
	suite.Equal(suite.accounts[domain.AccountCostOfGoodsSold].AccountID, cost.Lines[0].AccountID)
	suite.True(cost.Lines[0].Debit.Equal(decimal.NewFromInt(30)))
	suite.Equal(suite.accounts[domain.AccountInventory].AccountID, cost.Lines[1].AccountID)
	suite.True(cost.Lines[1].Credit.Equal(decimal.NewFromInt(30)))
}

func (suite *PostingServiceTestSuite) TestPostSale_ZeroCostBasisSkipsCostEntry() {
	ctx := context.Background()
	productID := uuid.NewString()
	sale := &domain.Sale{
		SaleID:      uuid.NewString(),
		SaleNumber:  7,
		TotalAmount: decimal.Zero,
		Items: []domain.SaleItem{
			{ProductID: productID, Quantity: 1, PricePerUnit: decimal.Zero},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByNames", ctx, mock.Anything).Return(suite.accounts, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{productID}).Return(map[string]domain.Product{
		productID: {ProductID: productID, Price: decimal.Zero},
	}, nil).Once()
	suite.captureSaves()

	err := suite.service.PostSale(ctx, sale, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.savedEntries, 1)
	suite.Equal("Sale #7", suite.savedEntries[0].Description)
}

func (suite *PostingServiceTestSuite) TestPostSale_MissingAccount() {
	ctx := context.Background()
	sale := &domain.Sale{SaleID: uuid.NewString(), SaleNumber: 1, TotalAmount: decimal.NewFromInt(10)}

	partial := map[string]domain.Account{
		domain.AccountCash: suite.accounts[domain.AccountCash],
		// Sales Revenue, COGS and Inventory are absent
	}
	suite.mockAccountRepo.On("FindAccountsByNames", ctx, mock.Anything).Return(partial, nil).Once()

	err := suite.service.PostSale(ctx, sale, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccount)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostPurchaseOrder_WritesSingleEntry() {
	ctx := context.Background()
	po := &domain.PurchaseOrder{
		POID:        uuid.NewString(),
		PONumber:    11,
		TotalAmount: decimal.NewFromInt(250),
	}

	suite.mockAccountRepo.On("FindAccountsByNames", ctx, []string{domain.AccountInventory, domain.AccountAccountsPayable}).Return(suite.accounts, nil).Once()
	suite.captureSaves()

	err := suite.service.PostPurchaseOrder(ctx, po, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(suite.savedEntries, 1)

	entry := suite.savedEntries[0]
	suite.Equal("Purchase Order #11", entry.Description)
	suite.Equal(domain.SourcePurchase, entry.SourceType)
	suite.Equal(po.POID, entry.SourceID)
	suite.Require().Len(entry.Lines, 2)
	suite.Equal(suite.accounts[domain.AccountInventory].AccountID, entry.Lines[0].AccountID)
	suite.True(entry.Lines[0].Debit.Equal(decimal.NewFromInt(250)))
	suite.Equal(suite.accounts[domain.AccountAccountsPayable].AccountID, entry.Lines[1].AccountID)
	suite.True(entry.Lines[1].Credit.Equal(decimal.NewFromInt(250)))
}

func (suite *PostingServiceTestSuite) TestPostPurchaseOrder_MissingAccount() {
	ctx := context.Background()
	po := &domain.PurchaseOrder{POID: uuid.NewString(), PONumber: 2, TotalAmount: decimal.NewFromInt(5)}

	suite.mockAccountRepo.On("FindAccountsByNames", ctx, mock.Anything).Return(map[string]domain.Account{}, nil).Once()

	err := suite.service.PostPurchaseOrder(ctx, po, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccount)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
