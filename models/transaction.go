package models

import "time"

// Transaction types as stored and as used by the scoring pipeline.
const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// MonthUnknown is the bucket for transactions without a parseable date.
// Those rows still count toward totals but are skipped when averaging
// monthly income and expense.
const MonthUnknown = "unknown"

// Transaction is one row of a user's ledger. Date is nil when the source
// value was missing or unparseable.
type Transaction struct {
	ID          string     `json:"id,omitempty"`
	UserID      string     `json:"user_id,omitempty"`
	AccountID   string     `json:"account_id,omitempty"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Type        string     `json:"type"`
	Category    string     `json:"category,omitempty"`
	Reference   string     `json:"reference,omitempty"`
	Month       string     `json:"-"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
}

// RawTransaction is a ledger row before normalization. Every field is
// optional; the normalizer degrades bad values to safe defaults instead of
// rejecting the row.
type RawTransaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
}
