package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

type PgxDayLogRepository struct {
	BaseRepository
}

func newPgxDayLogRepository(pool *pgxpool.Pool) portsrepo.DayLogRepositoryFacade {
	return &PgxDayLogRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DayLogRepositoryFacade = (*PgxDayLogRepository)(nil)

const dayLogColumns = `day_log_id, log_date, start_time, end_time, user_id`

func scanDayLog(row pgx.Row) (domain.DayLog, error) {
	var d domain.DayLog
	err := row.Scan(&d.DayLogID, &d.LogDate, &d.StartTime, &d.EndTime, &d.UserID)
	return d, err
}

// SaveDayLog inserts a new day log row. The unique log_date constraint makes
// double opening of the same day a duplicate error, not a second row.
func (r *PgxDayLogRepository) SaveDayLog(ctx context.Context, log domain.DayLog) error {
	query := `
		INSERT INTO day_log (day_log_id, log_date, start_time, end_time, user_id)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, log.DayLogID, log.LogDate, log.StartTime, log.EndTime, log.UserID)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: day %s already has a log", apperrors.ErrDuplicate, log.LogDate)
		}
		return fmt.Errorf("failed to save day log %s: %w", log.DayLogID, err)
	}
	return nil
}

// UpdateDayLog overwrites an existing day log row.
func (r *PgxDayLogRepository) UpdateDayLog(ctx context.Context, log domain.DayLog) error {
	query := `
		UPDATE day_log
		SET start_time = $2, end_time = $3, user_id = $4
		WHERE day_log_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, log.DayLogID, log.StartTime, log.EndTime, log.UserID)
	if err != nil {
		return fmt.Errorf("failed to update day log %s: %w", log.DayLogID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindByDate retrieves the log row for an ISO date.
func (r *PgxDayLogRepository) FindByDate(ctx context.Context, logDate string) (*domain.DayLog, error) {
	query := `SELECT ` + dayLogColumns + ` FROM day_log WHERE log_date = $1;`
	d, err := scanDayLog(r.Pool.QueryRow(ctx, query, logDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find day log for %s: %w", logDate, err)
	}
	return &d, nil
}

// ListDayLogs retrieves logs newest first.
func (r *PgxDayLogRepository) ListDayLogs(ctx context.Context) ([]domain.DayLog, error) {
	query := `SELECT ` + dayLogColumns + ` FROM day_log ORDER BY log_date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list day logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.DayLog
	for rows.Next() {
		d, err := scanDayLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day log row: %w", err)
		}
		logs = append(logs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day log rows: %w", err)
	}
	return logs, nil
}
