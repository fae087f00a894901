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

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/core/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem) (int64, error) {
	args := m.Called(ctx, sale, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, from, to *time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleItem), args.Error(1)
}

func (m *MockSaleRepository) SummarizeSales(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSummary), args.Error(1)
}

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) PostSale(ctx context.Context, sale *domain.Sale, userID string) error {
	args := m.Called(ctx, sale, userID)
	return args.Error(0)
}

func (m *MockPostingService) PostPurchaseOrder(ctx context.Context, po *domain.PurchaseOrder, userID string) error {
	args := m.Called(ctx, po, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductReader
	mockPostingSvc  *MockPostingService
	service         portssvc.SaleSvcFacade
	productID       string
	product         domain.Product
	userID          string
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductReader)
	suite.mockPostingSvc = new(MockPostingService)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockProductRepo, suite.mockPostingSvc)

	suite.userID = uuid.NewString()
	suite.productID = uuid.NewString()
	suite.product = domain.Product{
		ProductID:     suite.productID,
		Name:          "Espresso Beans 1kg",
		Price:         decimal.NewFromFloat(12.50),
		StockQuantity: 20,
	}
}

// --- Test Cases ---

func (suite *SaleServiceTestSuite) TestCompleteSale_Success() {
	ctx := context.Background()
	req := dto.CompleteSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: suite.productID, Quantity: 2}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{suite.productID}).Return(map[string]domain.Product{
		suite.productID: suite.product,
	}, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem")).Return(int64(17), nil).Once()
	suite.mockPostingSvc.On("PostSale", ctx, mock.AnythingOfType("*domain.Sale"), suite.userID).Return(nil).Once()

	sale, warning, err := suite.service.CompleteSale(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Empty(warning)
	suite.Equal(int64(17), sale.SaleNumber)
	suite.True(sale.TotalAmount.Equal(decimal.NewFromInt(25)))
	suite.Require().Len(sale.Items, 1)
	suite.True(sale.Items[0].PricePerUnit.Equal(suite.product.Price))
	suite.Equal(suite.userID, sale.CreatedBy)

	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockPostingSvc.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCompleteSale_PostingFailureKeepsSale() {
	ctx := context.Background()
	req := dto.CompleteSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: suite.productID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(map[string]domain.Product{
		suite.productID: suite.product,
	}, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.Anything, mock.Anything).Return(int64(18), nil).Once()
	suite.mockPostingSvc.On("PostSale", ctx, mock.Anything, suite.userID).Return(apperrors.ErrMissingAccount).Once()

	sale, warning, err := suite.service.CompleteSale(ctx, req, suite.userID)

	// The sale stands; the posting failure surfaces only as a warning.
	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.NotEmpty(warning)
	suite.Contains(warning, "ledger posting failed")
	suite.Equal(int64(18), sale.SaleNumber)
}

func (suite *SaleServiceTestSuite) TestCompleteSale_UnknownProduct() {
	ctx := context.Background()
	req := dto.CompleteSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: suite.productID, Quantity: 1}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(map[string]domain.Product{}, nil).Once()

	_, _, err := suite.service.CompleteSale(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCompleteSale_InsufficientStock() {
	ctx := context.Background()
	req := dto.CompleteSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: suite.productID, Quantity: 100}},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, mock.Anything).Return(map[string]domain.Product{
		suite.productID: suite.product,
	}, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrInsufficientStock).Once()

	_, _, err := suite.service.CompleteSale(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockPostingSvc.AssertNotCalled(suite.T(), "PostSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestSalesReport_DefaultsOpenRange() {
	ctx := context.Background()
	summary := &domain.SalesSummary{SaleCount: 3, TotalRevenue: decimal.NewFromInt(90)}

	suite.mockSaleRepo.On("SummarizeSales", ctx, mock.MatchedBy(func(from time.Time) bool {
		return from.IsZero()
	}), mock.MatchedBy(func(to time.Time) bool {
		return !to.IsZero()
	})).Return(summary, nil).Once()

	got, err := suite.service.SalesReport(ctx, dto.ListSalesParams{})

	suite.Require().NoError(err)
	suite.Equal(summary, got)
}

func (suite *SaleServiceTestSuite) TestSaleItems_NotFound() {
	ctx := context.Background()
	saleID := uuid.NewString()
	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SaleItems(ctx, saleID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "FindItemsBySaleID", mock.Anything, mock.Anything)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
