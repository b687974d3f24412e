package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
)

const txColumns = "id, tx_date, category, amount, payer, note, status, is_settlement, created_at, updated_at"

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	t := &models.Transaction{}
	var status string
	var settlement int
	err := row.Scan(
		&t.ID,
		&t.Date,
		&t.Category,
		&t.Amount,
		&t.Payer,
		&t.Note,
		&status,
		&settlement,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	t.Status = models.TxStatus(status)
	t.IsSettlement = settlement != 0
	return t, err
}

// CreateTransaction persists a transaction together with its split.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = unixNow()
	}
	t.UpdatedAt = t.CreatedAt

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (`+txColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Category, t.Amount.String(), t.Payer, t.Note,
		string(t.Status), boolToInt(t.IsSettlement), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := replaceSplit(ctx, tx, "transaction_splits", "transaction_id", t.ID, t.Split); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID, including its split.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx, `SELECT `+txColumns+` FROM transactions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("transaction", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	splits, err := s.loadSplits(ctx,
		`SELECT transaction_id, member, share FROM transaction_splits WHERE transaction_id = ?`, id)
	if err != nil {
		return nil, err
	}
	t.Split = splits[id]
	if t.Split == nil {
		t.Split = models.Split{}
	}
	return t, nil
}

// ListTransactions returns matching transactions, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, filter storage.TransactionFilter) ([]*models.Transaction, error) {
	var where []string
	var args []any
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		where = append(where, "(LOWER(category) LIKE ? OR LOWER(note) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		where = append(where, "category = ?")
		args = append(args, c)
	}

	query := `SELECT ` + txColumns + ` FROM transactions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY tx_date DESC, created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	if len(txs) == 0 {
		return txs, nil
	}

	splits, err := s.loadSplits(ctx, `SELECT transaction_id, member, share FROM transaction_splits`)
	if err != nil {
		return nil, err
	}
	for _, t := range txs {
		t.Split = splits[t.ID]
		if t.Split == nil {
			t.Split = models.Split{}
		}
	}
	return txs, nil
}

// UpdateTransaction overwrites a transaction and its split.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	t.UpdatedAt = unixNow()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE transactions SET tx_date = ?, category = ?, amount = ?, payer = ?, note = ?,
		 status = ?, is_settlement = ?, updated_at = ? WHERE id = ?`,
		t.Date, t.Category, t.Amount.String(), t.Payer, t.Note,
		string(t.Status), boolToInt(t.IsSettlement), t.UpdatedAt, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if err := checkAffected(res, "transaction", t.ID); err != nil {
		return err
	}

	if err := replaceSplit(ctx, tx, "transaction_splits", "transaction_id", t.ID, t.Split); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction and its split.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transaction_splits WHERE transaction_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete transaction split: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if err := checkAffected(res, "transaction", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
