package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
	"github.com/tillworks/tilldesk/internal/utils/accounting"
)

// journalService validates and persists balanced journal entries.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates the balance invariant and the referenced accounts,
// then persists the entry with its lines atomically. On any validation
// failure nothing reaches storage.
func (s *journalService) PostEntry(ctx context.Context, req dto.PostEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	entryID := uuid.NewString()
	lines := make([]domain.JournalLine, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			LineNo:    i + 1,
		}
		accountIDs = append(accountIDs, l.AccountID)
	}

	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve entry accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrMissingAccount, id)
		}
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   now,
		Description: req.Description,
		TotalAmount: domain.DebitTotal(lines),
		SourceType:  domain.SourceManual,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("failed to post journal entry", "entryID", entryID, "error", err)
		return nil, err
	}
	logger.Info("journal entry posted", "entryID", entryID, "total", entry.TotalAmount.String())
	return &entry, nil
}

// ListEntries retrieves entry headers newest first.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	return s.journalRepo.ListEntries(ctx, params.From, params.To)
}

// EntryLines retrieves the ordered lines of one entry.
func (s *journalService) EntryLines(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	if _, err := s.journalRepo.FindEntryByID(ctx, entryID); err != nil {
		return nil, err
	}
	return s.journalRepo.FindLinesByEntryID(ctx, entryID)
}
