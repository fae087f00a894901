package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/middleware"
)

const logDateLayout = "2006-01-02"

// dayLogService tracks business day open and close times, one row per
// calendar date.
type dayLogService struct {
	dayLogRepo portsrepo.DayLogRepositoryFacade
}

// NewDayLogService creates a new DayLogService.
func NewDayLogService(dayLogRepo portsrepo.DayLogRepositoryFacade) portssvc.DayLogSvcFacade {
	return &dayLogService{dayLogRepo: dayLogRepo}
}

var _ portssvc.DayLogSvcFacade = (*dayLogService)(nil)

// StartDay opens today's log. A second start on the same date returns the
// existing log unchanged.
func (s *dayLogService) StartDay(ctx context.Context, userID string) (*domain.DayLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	today := now.Format(logDateLayout)

	existing, err := s.dayLogRepo.FindByDate(ctx, today)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	log := domain.DayLog{
		DayLogID:  uuid.NewString(),
		LogDate:   today,
		StartTime: &now,
		UserID:    userID,
	}
	if err := s.dayLogRepo.SaveDayLog(ctx, log); err != nil {
		// A concurrent start may have won the insert; fall back to its row.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.dayLogRepo.FindByDate(ctx, today)
		}
		return nil, err
	}
	logger.Info("business day started", "logDate", today, "userID", userID)
	return &log, nil
}

// EndDay closes today's log by stamping the end time.
func (s *dayLogService) EndDay(ctx context.Context, userID string) (*domain.DayLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	today := now.Format(logDateLayout)

	log, err := s.dayLogRepo.FindByDate(ctx, today)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: day %s was never started", apperrors.ErrConflict, today)
		}
		return nil, err
	}

	log.EndTime = &now
	log.UserID = userID
	if err := s.dayLogRepo.UpdateDayLog(ctx, *log); err != nil {
		return nil, err
	}
	logger.Info("business day ended", "logDate", today, "userID", userID)
	return log, nil
}

// Today returns the current day's log if one exists.
func (s *dayLogService) Today(ctx context.Context) (*domain.DayLog, error) {
	return s.dayLogRepo.FindByDate(ctx, time.Now().Format(logDateLayout))
}

// ListDayLogs retrieves logs newest first.
func (s *dayLogService) ListDayLogs(ctx context.Context) ([]domain.DayLog, error) {
	return s.dayLogRepo.ListDayLogs(ctx)
}
