package repositories

import (
	"context"
	"time"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry header by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries ordered by entry date descending,
	// optionally bounded by an inclusive date range.
	ListEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of an entry in line order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveEntry persists an entry and all of its lines in a single database
	// transaction: either everything is visible afterwards or nothing is.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
