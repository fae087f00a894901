package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
	"github.com/tillworks/tilldesk/internal/utils"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, filterType *domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, filterType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockAccountService
	jwtSecret string
	userID    string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accounttype", func(fl validator.FieldLevel) bool {
			return domain.IsValidAccountType(domain.AccountType(fl.Field().String()))
		})
	}

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockSvc = new(MockAccountService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerAccountRoutes(v1, suite.mockSvc)
}

func (suite *AccountHandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT(suite.userID, domain.RoleAdmin, suite.jwtSecret, time.Hour, "tilldesk-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *AccountHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:           "Petty Cash",
		AccountType:    domain.Asset,
		OpeningBalance: decimal.NewFromInt(50),
	}
	created := &domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		OpeningBalance: req.OpeningBalance,
	}

	suite.mockSvc.On("CreateAccount", mock.Anything, req, suite.userID).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal("Petty Cash", resp.Name)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidType() {
	body := map[string]any{"name": "Broken", "accountType": "NOT_A_TYPE"}

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateName() {
	req := dto.CreateAccountRequest{Name: domain.AccountCash, AccountType: domain.Asset}

	suite.mockSvc.On("CreateAccount", mock.Anything, req, suite.userID).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockSvc.On("GetAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_TypeFilter() {
	asset := domain.Asset
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Name: domain.AccountCash, AccountType: domain.Asset},
	}
	suite.mockSvc.On("ListAccounts", mock.Anything, &asset).Return(accounts, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/accounts?type=ASSET", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_BadTypeFilter() {
	w := suite.doRequest(http.MethodGet, "/api/v1/accounts?type=BOGUS", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestUnauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
