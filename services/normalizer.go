package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/Wodenvase/BharatLedger/models"
)

// Ledger date layouts tried in order. Bank exports in the wild mix
// day-first and ISO forms.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02-01-2006",
	"02/01/2006",
}

// NormalizeLedger coerces raw ledger rows into canonical transactions.
// Per-row anomalies degrade to safe defaults: an unparseable date stays
// nil and lands in the "unknown" month bucket, an unparseable amount
// becomes 0.0, a missing type is inferred from the amount sign. No row is
// ever dropped.
func NormalizeLedger(rows []models.RawTransaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeRow(row))
	}
	return out
}

func normalizeRow(row models.RawTransaction) models.Transaction {
	tx := models.Transaction{
		Description: row.Description,
		Amount:      parseAmount(row.Amount),
	}

	if ts, ok := ParseLedgerDate(row.Date); ok {
		tx.Date = &ts
		tx.Month = ts.Format("2006-01")
	} else {
		tx.Month = models.MonthUnknown
	}

	tx.Type = normalizeType(row.Type, tx.Amount)
	return tx
}

// ParseLedgerDate parses a ledger date string against the known layouts.
func ParseLedgerDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0.0
	}
	// Tolerate thousands separators from CSV exports.
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// normalizeType canonicalizes Credit/Debit spellings and infers the type
// from the amount sign when it is missing. Unrecognized non-empty values
// pass through untouched; such rows count toward totals but neither
// income nor expense sums.
func normalizeType(raw string, amount float64) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		if amount >= 0 {
			return models.TypeCredit
		}
		return models.TypeDebit
	}
	if strings.EqualFold(v, models.TypeCredit) {
		return models.TypeCredit
	}
	if strings.EqualFold(v, models.TypeDebit) {
		return models.TypeDebit
	}
	return v
}
