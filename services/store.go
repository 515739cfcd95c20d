package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Wodenvase/BharatLedger/apperrors"
	"github.com/Wodenvase/BharatLedger/models"
	"github.com/Wodenvase/BharatLedger/utils"
)

// UserStore resolves request identities and manages profiles.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// ResolveID turns a userId-or-userEmail request identity into a user ID.
func (s *UserStore) ResolveID(ctx context.Context, userID, userEmail string) (string, error) {
	if userID != "" {
		var id string
		err := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1`, userID).Scan(&id)
		if err == sql.ErrNoRows {
			return "", apperrors.NewNotFoundError("User not found")
		}
		if err != nil {
			return "", fmt.Errorf("failed to resolve user: %w", err)
		}
		return id, nil
	}

	if userEmail == "" {
		return "", apperrors.NewInputError("userId or userEmail required")
	}

	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1 LIMIT 1`, userEmail).Scan(&id)
	if err == sql.ErrNoRows {
		return "", apperrors.NewNotFoundError("User not found")
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve user: %w", err)
	}
	return id, nil
}

// GetProfile returns the user's profile.
func (s *UserStore) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, created_at
		FROM users
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// UpdateName updates the user's display name.
func (s *UserStore) UpdateName(ctx context.Context, userID, name string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		UPDATE users SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, email, name, created_at
	`, name, userID).Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// TransactionStore is the ledger source. The scoring pipeline treats its
// output as raw rows and re-normalizes them.
type TransactionStore struct {
	db *sql.DB
}

func NewTransactionStore(db *sql.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// FetchLedger returns the user's full ledger ordered by date ascending,
// as raw rows for the normalizer. An empty result is not an error.
func (s *TransactionStore) FetchLedger(ctx context.Context, userID string) ([]models.RawTransaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, description, amount, type
		FROM transactions
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger: %w", err)
	}
	defer rows.Close()

	var ledger []models.RawTransaction
	for rows.Next() {
		var (
			date        sql.NullTime
			description sql.NullString
			amount      float64
			txType      sql.NullString
		)
		if err := rows.Scan(&date, &description, &amount, &txType); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}

		raw := models.RawTransaction{
			Description: description.String,
			Amount:      strconv.FormatFloat(amount, 'f', -1, 64),
			Type:        txType.String,
		}
		if date.Valid {
			raw.Date = date.Time.Format(time.RFC3339)
		}
		ledger = append(ledger, raw)
	}
	return ledger, rows.Err()
}

// ListFilter narrows and pages a transaction listing.
type ListFilter struct {
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// ListResult is a page of transactions plus listing aggregates.
type ListResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
	TotalAmount  float64              `json:"totalAmount"`
	HasMore      bool                 `json:"hasMore"`
}

// List returns a filtered, paginated page of the user's transactions
// ordered by date descending.
func (s *TransactionStore) List(ctx context.Context, userID string, filter ListFilter) (*ListResult, error) {
	where := "WHERE user_id = $1"
	args := []interface{}{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	var total int
	var totalAmount float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM transactions `+where, args...).
		Scan(&total, &totalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	limitArgs := append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, date, description, amount, type, category, created_at
		FROM transactions %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	rows, err := s.db.QueryContext(ctx, query, limitArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		var date sql.NullTime
		var category sql.NullString
		if err := rows.Scan(&tx.ID, &date, &tx.Description, &tx.Amount, &tx.Type, &category, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if date.Valid {
			t := date.Time
			tx.Date = &t
		}
		tx.Category = category.String
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ListResult{
		Transactions: transactions,
		Total:        total,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
		TotalAmount:  totalAmount,
		HasMore:      filter.Offset+len(transactions) < total,
	}, nil
}

// FetchMonth returns the user's transactions within [start, end] ordered
// by date descending, for the dashboard overview.
func (s *TransactionStore) FetchMonth(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, description, amount, type, category, created_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var date sql.NullTime
		var category sql.NullString
		if err := rows.Scan(&tx.ID, &date, &tx.Description, &tx.Amount, &tx.Type, &category, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if date.Valid {
			t := date.Time
			tx.Date = &t
		}
		tx.Category = category.String
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// CountByUser returns the user's total transaction count.
func (s *TransactionStore) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// BulkInsert stores cleaned CSV records in a single transaction.
func (s *TransactionStore) BulkInsert(ctx context.Context, userID, accountID string, records []CSVRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO transactions (id, user_id, account_id, date, description, amount, type, category, reference, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NOW())
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, rec := range records {
			var date interface{}
			if rec.Date != nil {
				date = *rec.Date
			}
			if _, err := stmt.ExecContext(ctx,
				uuid.New().String(), userID, accountID, date,
				rec.Description, rec.Amount, rec.Type, rec.Category, rec.Reference,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert transactions: %w", err)
	}

	return len(records), nil
}

// AccountStore verifies account ownership and counts connected sources.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// BelongsTo reports whether the account exists and belongs to the user.
func (s *AccountStore) BelongsTo(ctx context.Context, accountID, userID string) (bool, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM accounts WHERE id = $1 AND user_id = $2`, accountID, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return true, nil
}

// CountConnected returns the number of connected accounts for a user.
func (s *AccountStore) CountConnected(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE user_id = $1 AND connected = TRUE`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
