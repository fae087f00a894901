package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/core/services"
)

// --- Mock DayLogRepository ---
type MockDayLogRepository struct {
	mock.Mock
}

var _ portsrepo.DayLogRepositoryFacade = (*MockDayLogRepository)(nil)

func (m *MockDayLogRepository) FindByDate(ctx context.Context, logDate string) (*domain.DayLog, error) {
	args := m.Called(ctx, logDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayLog), args.Error(1)
}

func (m *MockDayLogRepository) ListDayLogs(ctx context.Context) ([]domain.DayLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayLog), args.Error(1)
}

func (m *MockDayLogRepository) SaveDayLog(ctx context.Context, log domain.DayLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockDayLogRepository) UpdateDayLog(ctx context.Context, log domain.DayLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Test Suite Setup ---
type DayLogServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDayLogRepository
	service  portssvc.DayLogSvcFacade
	today    string
	userID   string
}

func (suite *DayLogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDayLogRepository)
	suite.service = services.NewDayLogService(suite.mockRepo)
	suite.today = time.Now().Format("2006-01-02")
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *DayLogServiceTestSuite) TestStartDay_NewDay() {
	ctx := context.Background()

	suite.mockRepo.On("FindByDate", ctx, suite.today).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveDayLog", ctx, mock.MatchedBy(func(log domain.DayLog) bool {
		return log.LogDate == suite.today && log.StartTime != nil && log.EndTime == nil && log.UserID == suite.userID
	})).Return(nil).Once()

	log, err := suite.service.StartDay(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(log)
	suite.Equal(suite.today, log.LogDate)
	suite.NotNil(log.StartTime)
	suite.Nil(log.EndTime)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DayLogServiceTestSuite) TestStartDay_AlreadyStarted() {
	ctx := context.Background()
	started := time.Now().Add(-2 * time.Hour)
	existing := &domain.DayLog{
		DayLogID:  uuid.NewString(),
		LogDate:   suite.today,
		StartTime: &started,
		UserID:    suite.userID,
	}

	suite.mockRepo.On("FindByDate", ctx, suite.today).Return(existing, nil).Once()

	log, err := suite.service.StartDay(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(existing, log)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDayLog", mock.Anything, mock.Anything)
}

func (suite *DayLogServiceTestSuite) TestStartDay_InsertRace() {
	ctx := context.Background()
	started := time.Now()
	winner := &domain.DayLog{DayLogID: uuid.NewString(), LogDate: suite.today, StartTime: &started}

	// The insert loses to a concurrent start; the winning row is returned.
	suite.mockRepo.On("FindByDate", ctx, suite.today).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveDayLog", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindByDate", ctx, suite.today).Return(winner, nil).Once()

	log, err := suite.service.StartDay(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(winner, log)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DayLogServiceTestSuite) TestEndDay_Success() {
	ctx := context.Background()
	started := time.Now().Add(-8 * time.Hour)
	existing := &domain.DayLog{
		DayLogID:  uuid.NewString(),
		LogDate:   suite.today,
		StartTime: &started,
		UserID:    suite.userID,
	}

	suite.mockRepo.On("FindByDate", ctx, suite.today).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDayLog", ctx, mock.MatchedBy(func(log domain.DayLog) bool {
		return log.EndTime != nil
	})).Return(nil).Once()

	log, err := suite.service.EndDay(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(log.EndTime)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DayLogServiceTestSuite) TestEndDay_NeverStarted() {
	ctx := context.Background()

	suite.mockRepo.On("FindByDate", ctx, suite.today).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.EndDay(ctx, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDayLog", mock.Anything, mock.Anything)
}

func TestDayLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DayLogServiceTestSuite))
}
