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
	"github.com/tillworks/tilldesk/internal/dto"
)

// --- Mock ProductRepository (reader + writer) ---
type MockProductRepository struct {
	MockProductReader
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Test Suite Setup ---
type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.InventorySvcFacade
	userID   string
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewInventoryService(suite.mockRepo, 10)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:          "Filter Papers",
		Barcode:       "4006381333931",
		Price:         decimal.NewFromFloat(3.20),
		StockQuantity: 40,
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(product.ProductID)
	suite.Equal(req.Barcode, product.Barcode)
	suite.Equal(40, product.StockQuantity)
	suite.Equal(suite.userID, product.CreatedBy)
}

func (suite *InventoryServiceTestSuite) TestCreateProduct_DuplicateBarcode() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Filter Papers", Barcode: "4006381333931"}

	suite.mockRepo.On("SaveProduct", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateProduct(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *InventoryServiceTestSuite) TestGetProductByBarcode_Empty() {
	ctx := context.Background()

	_, err := suite.service.GetProductByBarcode(ctx, "")

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProductByBarcode", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestLowStockReport_UsesConfiguredThreshold() {
	ctx := context.Background()
	low := []domain.Product{{ProductID: uuid.NewString(), Name: "Filter Papers", StockQuantity: 3}}

	suite.mockRepo.On("ListLowStock", ctx, 10).Return(low, nil).Once()

	got, err := suite.service.LowStockReport(ctx)

	suite.Require().NoError(err)
	suite.Equal(low, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestDeleteProduct_Referenced() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRepo.On("DeleteProduct", ctx, productID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteProduct(ctx, productID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
