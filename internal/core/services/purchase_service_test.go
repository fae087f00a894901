package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/core/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder, items []domain.PurchaseOrderItem) (int64, error) {
	args := m.Called(ctx, po, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchaseOrders(ctx context.Context, from, to *time.Time) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseRepository) FindItemsByPOID(ctx context.Context, poID string) ([]domain.PurchaseOrderItem, error) {
	args := m.Called(ctx, poID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrderItem), args.Error(1)
}

func (m *MockPurchaseRepository) SummarizePurchases(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseSummary), args.Error(1)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// --- Test Suite Setup ---
type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockSupplierRepo *MockSupplierRepository
	mockPostingSvc   *MockPostingService
	service          portssvc.PurchaseSvcFacade
	supplierID       string
	userID           string
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockPostingSvc = new(MockPostingService)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockSupplierRepo, suite.mockPostingSvc)

	suite.supplierID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PurchaseServiceTestSuite) expectSupplier() {
	suite.mockSupplierRepo.On("FindSupplierByID", mock.Anything, suite.supplierID).Return(&domain.Supplier{
		SupplierID: suite.supplierID,
		Name:       "Beanline Wholesale",
	}, nil).Once()
}

// --- Test Cases ---

func (suite *PurchaseServiceTestSuite) TestCompletePurchaseOrder_Success() {
	ctx := context.Background()
	productID := uuid.NewString()
	req := dto.CompletePORequest{
		SupplierID: suite.supplierID,
		Lines: []dto.POLineRequest{
			{ProductID: productID, Quantity: 10, CostPerUnit: decimal.NewFromInt(8)},
		},
	}

	suite.expectSupplier()
	suite.mockPurchaseRepo.On("SavePurchaseOrder", ctx, mock.AnythingOfType("domain.PurchaseOrder"), mock.AnythingOfType("[]domain.PurchaseOrderItem")).Return(int64(5), nil).Once()
	suite.mockPostingSvc.On("PostPurchaseOrder", ctx, mock.AnythingOfType("*domain.PurchaseOrder"), suite.userID).Return(nil).Once()

	po, warning, err := suite.service.CompletePurchaseOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(po)
	suite.Empty(warning)
	suite.Equal(int64(5), po.PONumber)
	suite.True(po.TotalAmount.Equal(decimal.NewFromInt(80)))
	suite.Require().Len(po.Items, 1)
	suite.Equal(productID, po.Items[0].ProductID)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockPostingSvc.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCompletePurchaseOrder_UnknownSupplier() {
	ctx := context.Background()
	req := dto.CompletePORequest{SupplierID: suite.supplierID}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, suite.supplierID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CompletePurchaseOrder(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchaseOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCompletePurchaseOrder_PostingFailureKeepsOrder() {
	ctx := context.Background()
	req := dto.CompletePORequest{
		SupplierID: suite.supplierID,
		Lines: []dto.POLineRequest{
			{ProductID: uuid.NewString(), Quantity: 2, CostPerUnit: decimal.NewFromInt(3)},
		},
	}

	suite.expectSupplier()
	suite.mockPurchaseRepo.On("SavePurchaseOrder", ctx, mock.Anything, mock.Anything).Return(int64(6), nil).Once()
	suite.mockPostingSvc.On("PostPurchaseOrder", ctx, mock.Anything, suite.userID).Return(apperrors.ErrMissingAccount).Once()

	po, warning, err := suite.service.CompletePurchaseOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(po)
	suite.NotEmpty(warning)
	suite.Contains(warning, "ledger posting failed")
}

func (suite *PurchaseServiceTestSuite) TestPurchaseOrderItems_NotFound() {
	ctx := context.Background()
	poID := uuid.NewString()
	suite.mockPurchaseRepo.On("FindPurchaseOrderByID", ctx, poID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PurchaseOrderItems(ctx, poID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "FindItemsByPOID", mock.Anything, mock.Anything)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
