package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource identifies the business event that produced a journal entry.
type EntrySource string

const (
	SourceManual   EntrySource = "MANUAL"
	SourceSale     EntrySource = "SALE"
	SourcePurchase EntrySource = "PURCHASE"
)

// BalanceTolerance is the maximum allowed absolute difference between the
// debit and credit totals of an accepted journal entry.
var BalanceTolerance = decimal.NewFromFloat(0.001)

// JournalEntry is a balanced group of debit/credit lines recorded as one unit.
// TotalAmount caches the sum of the debit lines at creation time.
type JournalEntry struct {
	EntryID     string          `json:"entryID"` // Primary key (UUID)
	EntryDate   time.Time       `json:"entryDate"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SourceType  EntrySource     `json:"sourceType"`
	SourceID    string          `json:"sourceID"` // Sale/PO reference, empty for manual entries
	Lines       []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single debit/credit posting against one account.
// Debit and credit are both non-negative; a line carrying both at once is
// not rejected (it nets out in every aggregate).
type JournalLine struct {
	LineID    string          `json:"lineID"` // Primary key (UUID)
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	LineNo    int             `json:"lineNo"` // Position within the entry, 1-based
}

// DebitTotal sums the debit side of the lines.
func DebitTotal(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Debit)
	}
	return total
}

// CreditTotal sums the credit side of the lines.
func CreditTotal(lines []JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Credit)
	}
	return total
}
