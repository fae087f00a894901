package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tillworks/tilldesk/internal/core/domain"
)

// EntryLineRequest is one debit/credit line of a journal entry to post.
type EntryLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// PostEntryRequest defines a manual journal entry to post.
type PostEntryRequest struct {
	Description string             `json:"description" binding:"required"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ListEntriesParams bounds the entry listing by an inclusive date range.
type ListEntriesParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// EntryLineResponse defines the data returned for a journal line.
type EntryLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	LineNo    int             `json:"lineNo"`
}

// EntryResponse defines the data returned for a journal entry header.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	EntryDate   time.Time           `json:"entryDate"`
	Description string              `json:"description"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	SourceType  domain.EntrySource  `json:"sourceType"`
	SourceID    string              `json:"sourceID,omitempty"`
	Lines       []EntryLineResponse `json:"lines,omitempty"`
}

// ToEntryLineResponses converts journal lines to response DTOs.
func ToEntryLineResponses(lines []domain.JournalLine) []EntryLineResponse {
	res := make([]EntryLineResponse, len(lines))
	for i, l := range lines {
		res[i] = EntryLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			LineNo:    l.LineNo,
		}
	}
	return res
}

// ToEntryResponse converts a domain.JournalEntry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		TotalAmount: e.TotalAmount,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
	}
	if len(e.Lines) > 0 {
		resp.Lines = ToEntryLineResponses(e.Lines)
	}
	return resp
}

// ToEntryResponses converts a slice of entries to response DTOs.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}
