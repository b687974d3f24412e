package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage/sqlite"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func seed(t *testing.T, dbPath string, fn func(store *sqlite.SQLiteStore)) {
	t.Helper()
	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer store.Close()
	fn(store)
}

func TestMigrate(t *testing.T) {
	t.Setenv("HOUSEHOLD_MEMBERS", "Lucas,Alex")
	db := filepath.Join(t.TempDir(), "nested", "household.db")

	out := execute(t, "--db", db, "migrate")
	assert.Contains(t, out, "schema version 1")

	out = execute(t, "--db", db, "migrate", "--status")
	assert.Contains(t, out, "schema version 1")
}

func TestDue(t *testing.T) {
	t.Setenv("HOUSEHOLD_MEMBERS", "Lucas,Alex")
	db := filepath.Join(t.TempDir(), "household.db")

	seed(t, db, func(store *sqlite.SQLiteStore) {
		require.NoError(t, store.CreateTask(context.Background(), &models.RecurringTask{
			Kind:          models.KindCleaning,
			Name:          "Bathroom",
			LastCompleted: models.MustParseDate("2020-01-01"),
			FrequencyDays: 7,
			Assignee:      "Lucas",
		}))
		require.NoError(t, store.CreateTask(context.Background(), &models.RecurringTask{
			Kind:          models.KindPlants,
			Name:          "Cactus",
			LastCompleted: models.MustParseDate("2999-01-01"),
			FrequencyDays: 30,
		}))
	})

	out := execute(t, "--db", db, "due")
	assert.Contains(t, out, "Bathroom")
	assert.NotContains(t, out, "Cactus")

	out = execute(t, "--db", db, "due", "--kind", "plants", "--all")
	assert.Contains(t, out, "Cactus")
	assert.NotContains(t, out, "Bathroom")
}

func TestBalancesAndSettle(t *testing.T) {
	t.Setenv("HOUSEHOLD_MEMBERS", "Lucas,Alex")
	db := filepath.Join(t.TempDir(), "household.db")

	seed(t, db, func(store *sqlite.SQLiteStore) {
		require.NoError(t, store.CreateTransaction(context.Background(), &models.Transaction{
			Date:     models.MustParseDate("2025-08-08"),
			Category: "Groceries",
			Amount:   decimal.NewFromInt(24),
			Payer:    "Lucas",
			Split:    models.EvenSplit([]string{"Lucas", "Alex"}),
			Status:   models.StatusPaid,
		}))
	})

	out := execute(t, "--db", db, "balances")
	assert.Contains(t, out, "Alex pays Lucas 12.00")

	out = execute(t, "--db", db, "settle", "--dry-run")
	assert.Contains(t, out, "Alex pays Lucas 12.00")
	assert.NotContains(t, out, "Recorded")

	out = execute(t, "--db", db, "settle", "--date", "2025-08-10")
	assert.Contains(t, out, "Recorded settlement")

	out = execute(t, "--db", db, "balances")
	assert.Contains(t, out, "All settled.")

	seed(t, db, func(store *sqlite.SQLiteStore) {
		txs, err := store.ListTransactions(context.Background(), storage.TransactionFilter{Category: models.SettlementCategory})
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.True(t, txs[0].IsSettlement)
		assert.Equal(t, "2025-08-10", txs[0].Date.String())
	})
}
