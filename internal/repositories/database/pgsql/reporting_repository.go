package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountActivity aggregates the full journal per account up to asOf.
// The LEFT JOIN keeps accounts with no postings in the result with zero
// sums, so every report covers the whole chart of accounts.
func (r *PgxReportingRepository) GetAccountActivity(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT a.account_id, a.account_name, a.account_type, a.initial_balance,
		       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       COALESCE(SUM(l.debit), 0)  AS total_debits,
		       COALESCE(SUM(l.credit), 0) AS total_credits
		FROM chart_of_accounts a
		LEFT JOIN (
			SELECT i.account_id, i.debit, i.credit
			FROM journal_entry_items i
			JOIN journal_entries e ON e.entry_id = i.journal_entry_id
			WHERE e.entry_date <= $1
		) l ON l.account_id = a.account_id
		GROUP BY a.account_id
		ORDER BY a.account_name;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query account activity: %w", err)
	}
	defer rows.Close()

	var activity []domain.AccountActivity
	for rows.Next() {
		var act domain.AccountActivity
		err := rows.Scan(
			&act.Account.AccountID,
			&act.Account.Name,
			&act.Account.AccountType,
			&act.Account.OpeningBalance,
			&act.Account.CreatedAt,
			&act.Account.CreatedBy,
			&act.Account.LastUpdatedAt,
			&act.Account.LastUpdatedBy,
			&act.Debits,
			&act.Credits,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account activity row: %w", err)
		}
		activity = append(activity, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}
	return activity, nil
}
