package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_date, description, total_amount, source_type, source_id, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	var sourceID *string
	err := row.Scan(
		&e.EntryID,
		&e.EntryDate,
		&e.Description,
		&e.TotalAmount,
		&e.SourceType,
		&sourceID,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if sourceID != nil {
		e.SourceID = *sourceID
	}
	return e, err
}

// SaveEntry persists the entry header and every line inside one transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, description, total_amount, source_type, source_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.EntryDate,
		entry.Description,
		entry.TotalAmount,
		entry.SourceType,
		nullableString(entry.SourceID),
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal entry %s: %w", entry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_entry_items (item_id, journal_entry_id, account_id, debit, credit, line_no)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range lines {
		_, err = tx.Exec(ctx, lineQuery,
			line.LineID,
			entry.EntryID,
			line.AccountID,
			line.Debit,
			line.Credit,
			line.LineNo,
		)
		if err != nil {
			if isPgErrCode(err, pgForeignKeyViolation) {
				return fmt.Errorf("%w: account %s", apperrors.ErrMissingAccount, line.AccountID)
			}
			return fmt.Errorf("failed to save journal line %s: %w", line.LineID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry header.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	e, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	return &e, nil
}

// ListEntries retrieves entry headers newest first, optionally bounded by an
// inclusive date range.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	args := []any{}
	where := ""
	if from != nil {
		args = append(args, *from)
		where = fmt.Sprintf(" WHERE entry_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if where == "" {
			where = fmt.Sprintf(" WHERE entry_date <= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND entry_date <= $%d", len(args))
		}
	}
	query += where + ` ORDER BY entry_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

// FindLinesByEntryID retrieves the lines of one entry in line order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT item_id, journal_entry_id, account_id, debit, credit, line_no
		FROM journal_entry_items
		WHERE journal_entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var l domain.JournalLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.AccountID, &l.Debit, &l.Credit, &l.LineNo); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return lines, nil
}
