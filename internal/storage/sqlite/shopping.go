package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

const itemColumns = "id, name, quantity, price, assigned, pick_today, long_term, target_date, status, created_at, updated_at"

func scanItem(row rowScanner) (*models.ShoppingItem, error) {
	item := &models.ShoppingItem{}
	var price decimal.NullDecimal
	var target sql.NullString
	var pickToday, longTerm int
	var status string
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&price,
		&item.Assigned,
		&pickToday,
		&longTerm,
		&target,
		&status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		p := price.Decimal
		item.Price = &p
	}
	if target.Valid && target.String != "" {
		d, err := models.ParseDate(target.String)
		if err != nil {
			return nil, fmt.Errorf("item %s target date: %w", item.ID, err)
		}
		item.TargetDate = &d
	}
	item.PickToday = pickToday != 0
	item.LongTerm = longTerm != 0
	item.Status = models.ItemStatus(status)
	return item, nil
}

func itemArgs(item *models.ShoppingItem) (price, target any) {
	if item.Price != nil {
		price = item.Price.String()
	}
	if item.TargetDate != nil && !item.TargetDate.IsZero() {
		target = item.TargetDate.String()
	}
	return price, target
}

// CreateItem persists a shopping item together with its split.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.ShoppingItem) error {
	if item.ID == "" {
		item.ID = newID()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = unixNow()
	}
	item.UpdatedAt = item.CreatedAt
	price, target := itemArgs(item)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO shopping_items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, price, item.Assigned,
		boolToInt(item.PickToday), boolToInt(item.LongTerm), target, string(item.Status),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping item: %w", err)
	}
	if err := replaceSplit(ctx, tx, "shopping_item_splits", "item_id", item.ID, item.Split); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetItem retrieves a shopping item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.ShoppingItem, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM shopping_items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("shopping item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}

	splits, err := s.loadSplits(ctx, `SELECT item_id, member, share FROM shopping_item_splits WHERE item_id = ?`, id)
	if err != nil {
		return nil, err
	}
	item.Split = splits[id]
	return item, nil
}

// ListItems returns every shopping item, open items first, then by name.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]*models.ShoppingItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM shopping_items
		 ORDER BY CASE status WHEN 'open' THEN 0 ELSE 1 END, name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	var items []*models.ShoppingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping items: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	splits, err := s.loadSplits(ctx, `SELECT item_id, member, share FROM shopping_item_splits`)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Split = splits[item.ID]
	}
	return items, nil
}

// UpdateItem overwrites a shopping item and its split.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.ShoppingItem) error {
	item.UpdatedAt = unixNow()
	price, target := itemArgs(item)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE shopping_items SET name = ?, quantity = ?, price = ?, assigned = ?, pick_today = ?,
		 long_term = ?, target_date = ?, status = ?, updated_at = ? WHERE id = ?`,
		item.Name, item.Quantity, price, item.Assigned, boolToInt(item.PickToday),
		boolToInt(item.LongTerm), target, string(item.Status), item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	if err := checkAffected(res, "shopping item", item.ID); err != nil {
		return err
	}
	if err := replaceSplit(ctx, tx, "shopping_item_splits", "item_id", item.ID, item.Split); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteItem removes a shopping item and its split.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM shopping_item_splits WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete shopping item split: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM shopping_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	if err := checkAffected(res, "shopping item", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
