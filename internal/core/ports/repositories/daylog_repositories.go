package repositories

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// DayLogRepositoryFacade defines operations for business-day log data.
type DayLogRepositoryFacade interface {
	// FindByDate retrieves the log row for an ISO date, if any.
	FindByDate(ctx context.Context, logDate string) (*domain.DayLog, error)

	// ListDayLogs retrieves logs ordered by date descending.
	ListDayLogs(ctx context.Context) ([]domain.DayLog, error)

	// SaveDayLog persists a new day log row. Returns apperrors.ErrDuplicate
	// on a date collision.
	SaveDayLog(ctx context.Context, log domain.DayLog) error

	// UpdateDayLog overwrites an existing day log row.
	UpdateDayLog(ctx context.Context, log domain.DayLog) error
}
