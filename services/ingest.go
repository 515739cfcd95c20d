package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Wodenvase/BharatLedger/models"
)

// CSVRecord is one cleaned CSV row ready for storage.
type CSVRecord struct {
	Date        *time.Time
	Description string
	Amount      float64
	Type        string
	Category    string
	Reference   string
}

// ParseCSV reads a transaction CSV export, normalizing the bank-specific
// column names and cleaning each row. Rows with malformed fields keep
// their safe defaults rather than failing the batch; only a structurally
// unreadable file is an error.
func ParseCSV(r io.Reader) ([]CSVRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := mapColumns(header)

	var records []CSVRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		records = append(records, cleanRow(row, cols))
	}

	return records, nil
}

// mapColumns resolves heterogeneous bank-export header names to canonical
// field indices. Unrecognized columns are ignored.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, c := range header {
		lc := strings.ToLower(strings.TrimSpace(c))
		switch {
		case strings.Contains(lc, "date"):
			setOnce(cols, "date", i)
		case strings.Contains(lc, "desc"), strings.Contains(lc, "narration"),
			strings.Contains(lc, "particulars"):
			setOnce(cols, "description", i)
		case strings.Contains(lc, "amount") && !strings.Contains(lc, "bal"):
			setOnce(cols, "amount", i)
		case lc == "type" || lc == "tran_type" || lc == "transactiontype":
			setOnce(cols, "type", i)
		case strings.Contains(lc, "reference"), strings.Contains(lc, "ref"):
			setOnce(cols, "reference", i)
		}
	}
	return cols
}

func setOnce(cols map[string]int, key string, idx int) {
	if _, ok := cols[key]; !ok {
		cols[key] = idx
	}
}

func cleanRow(row []string, cols map[string]int) CSVRecord {
	rec := CSVRecord{}

	if ts, ok := ParseLedgerDate(field(row, cols, "date")); ok {
		rec.Date = &ts
	}

	rec.Description = strings.TrimSpace(field(row, cols, "description"))
	rec.Reference = strings.TrimSpace(field(row, cols, "reference"))

	if v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(field(row, cols, "amount")), ",", ""), 64); err == nil {
		rec.Amount = v
	}

	rec.Type = StandardizeType(field(row, cols, "type"))
	rec.Category = Categorize(rec.Description)

	return rec
}

func field(row []string, cols map[string]int, key string) string {
	idx, ok := cols[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// StandardizeType maps the type spellings seen in bank exports onto
// Credit/Debit. Unrecognized values are title-cased and kept; missing
// values default to Debit at ingest.
func StandardizeType(val string) string {
	v := strings.ToLower(strings.TrimSpace(val))
	switch v {
	case "":
		return models.TypeDebit
	case "credit", "cr", "deposit", "in":
		return models.TypeCredit
	case "debit", "dr", "withdrawal", "out":
		return models.TypeDebit
	}
	if isDigits(v) {
		return models.TypeDebit
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
