package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		store, err := New(dbPath)
		if err != nil {
			t.Fatalf("open #%d failed: %v", i+1, err)
		}
		store.Close()
	}

	version, dirty, err := SchemaVersion(dbPath)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != 1 || dirty {
		t.Errorf("expected clean version 1, got %d (dirty=%v)", version, dirty)
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	lucas := models.NewUser("Lucas@Example.com", "Lucas", "hash")
	if err := store.CreateUser(ctx, lucas); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	alex := models.NewUser("alex@example.com", "Alex", "hash")
	alex.CreatedAt = lucas.CreatedAt + 1
	if err := store.CreateUser(ctx, alex); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("lucas@example.com", "Other", "hash")); err == nil {
			t.Error("expected unique constraint error")
		}
	})

	t.Run("lookup by email ignores case", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "LUCAS@example.com ")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got.ID != lucas.ID || got.DisplayName != "Lucas" {
			t.Errorf("unexpected user %+v", got)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		_, err = store.GetUserByID(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list in registration order", func(t *testing.T) {
		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 2 || users[0].DisplayName != "Lucas" || users[1].DisplayName != "Alex" {
			t.Errorf("unexpected order: %v", users)
		}
	})
}

func TestTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bathroom := &models.RecurringTask{
		Kind:          models.KindCleaning,
		Name:          "Bathroom",
		Detail:        "Upstairs",
		LastCompleted: models.MustParseDate("2025-08-01"),
		FrequencyDays: 7,
		Assignee:      "Lucas",
	}
	if err := store.CreateTask(ctx, bathroom); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if bathroom.ID == "" || bathroom.CreatedAt == 0 {
		t.Fatal("expected ID and CreatedAt to be generated")
	}

	monstera := &models.RecurringTask{
		Kind:          models.KindPlants,
		Name:          "Monstera",
		Detail:        "Monstera deliciosa",
		LastCompleted: models.MustParseDate("2025-08-05"),
		FrequencyDays: 10,
	}
	if err := store.CreateTask(ctx, monstera); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	got, err := store.GetTask(ctx, bathroom.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Kind != models.KindCleaning || got.Name != "Bathroom" || got.Detail != "Upstairs" ||
		got.LastCompleted != bathroom.LastCompleted || got.FrequencyDays != 7 || got.Assignee != "Lucas" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	cleaning, err := store.ListTasks(ctx, models.KindCleaning)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(cleaning) != 1 || cleaning[0].ID != bathroom.ID {
		t.Errorf("expected only the bathroom, got %v", cleaning)
	}
	all, err := store.ListTasks(ctx, "")
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(all))
	}

	got.LastCompleted = models.MustParseDate("2025-08-10")
	got.Assignee = "Alex"
	if err := store.UpdateTask(ctx, got); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	updated, _ := store.GetTask(ctx, bathroom.ID)
	if updated.LastCompleted.String() != "2025-08-10" || updated.Assignee != "Alex" {
		t.Errorf("update not persisted: %+v", updated)
	}

	if err := store.DeleteTask(ctx, bathroom.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := store.GetTask(ctx, bathroom.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteTask(ctx, bathroom.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
	if err := store.UpdateTask(ctx, &models.RecurringTask{ID: "missing", Kind: models.KindPlants}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating missing task, got %v", err)
	}
}

func TestTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	groceries := &models.Transaction{
		Date:     models.MustParseDate("2025-08-08"),
		Category: "Groceries",
		Amount:   dec("34.80"),
		Payer:    "Lucas",
		Split:    models.Split{"Lucas": dec("0.5"), "Alex": dec("0.5")},
		Note:     "Weekly shop",
		Status:   models.StatusPaid,
	}
	internet := &models.Transaction{
		Date:     models.MustParseDate("2025-08-09"),
		Category: "Utilities",
		Amount:   dec("48.40"),
		Payer:    "Alex",
		Split:    models.Split{"Lucas": dec("0.5"), "Alex": dec("0.5")},
		Note:     "Internet",
		Status:   models.StatusDue,
	}
	for _, tx := range []*models.Transaction{groceries, internet} {
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	t.Run("round trip keeps exact amounts", func(t *testing.T) {
		got, err := store.GetTransaction(ctx, groceries.ID)
		if err != nil {
			t.Fatalf("GetTransaction failed: %v", err)
		}
		if !got.Amount.Equal(dec("34.80")) {
			t.Errorf("amount: expected 34.80, got %s", got.Amount)
		}
		if len(got.Split) != 2 || !got.Split["Alex"].Equal(dec("0.5")) {
			t.Errorf("split mismatch: %v", got.Split)
		}
		if got.Date.String() != "2025-08-08" || got.Status != models.StatusPaid || got.IsSettlement {
			t.Errorf("unexpected transaction: %+v", got)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		txs, err := store.ListTransactions(ctx, storage.TransactionFilter{})
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(txs) != 2 || txs[0].ID != internet.ID {
			t.Fatalf("expected internet first, got %v", txs)
		}
		if len(txs[1].Split) != 2 {
			t.Errorf("expected splits to be loaded, got %v", txs[1].Split)
		}
	})

	t.Run("search and category filter", func(t *testing.T) {
		txs, _ := store.ListTransactions(ctx, storage.TransactionFilter{Query: "WEEKLY"})
		if len(txs) != 1 || txs[0].ID != groceries.ID {
			t.Errorf("query on note: got %v", txs)
		}
		txs, _ = store.ListTransactions(ctx, storage.TransactionFilter{Query: "util"})
		if len(txs) != 1 || txs[0].ID != internet.ID {
			t.Errorf("query on category: got %v", txs)
		}
		txs, _ = store.ListTransactions(ctx, storage.TransactionFilter{Category: "Groceries", Query: "internet"})
		if len(txs) != 0 {
			t.Errorf("expected no match, got %v", txs)
		}
	})

	t.Run("update replaces split", func(t *testing.T) {
		groceries.Amount = dec("40")
		groceries.Split = models.Split{"Lucas": dec("1")}
		if err := store.UpdateTransaction(ctx, groceries); err != nil {
			t.Fatalf("UpdateTransaction failed: %v", err)
		}
		got, _ := store.GetTransaction(ctx, groceries.ID)
		if !got.Amount.Equal(dec("40")) || len(got.Split) != 1 {
			t.Errorf("update not persisted: %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteTransaction(ctx, internet.ID); err != nil {
			t.Fatalf("DeleteTransaction failed: %v", err)
		}
		if _, err := store.GetTransaction(ctx, internet.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteTransaction(ctx, internet.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound deleting twice, got %v", err)
		}
	})
}

func TestShoppingItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	price := dec("1.29")
	milk := &models.ShoppingItem{
		Name:     "Milk",
		Quantity: 2,
		Price:    &price,
		Assigned: models.AssignedBoth,
		Split:    models.Split{"Lucas": dec("0.7"), "Alex": dec("0.3")},
		Status:   models.ItemOpen,
	}
	target := models.MustParseDate("2025-12-01")
	sofa := &models.ShoppingItem{
		Name:       "Sofa",
		Quantity:   1,
		Assigned:   "Alex",
		LongTerm:   true,
		TargetDate: &target,
		Status:     models.ItemOpen,
	}
	for _, item := range []*models.ShoppingItem{milk, sofa} {
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	got, err := store.GetItem(ctx, milk.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got.Price == nil || !got.Price.Equal(price) || got.Quantity != 2 || !got.Split["Lucas"].Equal(dec("0.7")) {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.TargetDate != nil {
		t.Errorf("expected no target date, got %v", got.TargetDate)
	}

	got, _ = store.GetItem(ctx, sofa.ID)
	if got.Price != nil || got.TargetDate == nil || got.TargetDate.String() != "2025-12-01" || !got.LongTerm {
		t.Errorf("long-term item mismatch: %+v", got)
	}

	milk.Status = models.ItemBought
	if err := store.UpdateItem(ctx, milk); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	items, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != sofa.ID || items[1].Status != models.ItemBought {
		t.Errorf("expected open items first, got %v", items)
	}

	if err := store.DeleteItem(ctx, milk.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := store.GetItem(ctx, milk.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
