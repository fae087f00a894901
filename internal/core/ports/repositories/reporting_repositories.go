package repositories

import (
	"context"
	"time"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind the financial
// reports. Balances are recomputed from scratch on every call; nothing is
// materialized or cached.
type ReportingRepository interface {
	// GetAccountActivity retrieves every account joined with the summed
	// debit and credit sides of its journal lines up to asOf. Accounts with
	// no activity appear with zero sums.
	GetAccountActivity(ctx context.Context, asOf time.Time) ([]domain.AccountActivity, error)
}
