package calculator

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

var household = []string{"Lucas", "Alex"}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func half() models.Split {
	return models.Split{"Lucas": d("0.5"), "Alex": d("0.5")}
}

func expense(amount, payer string, split models.Split) models.Transaction {
	return models.Transaction{
		Date:     models.MustParseDate("2025-08-08"),
		Category: "Groceries",
		Amount:   d(amount),
		Payer:    payer,
		Split:    split,
		Status:   models.StatusPaid,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func TestComputeNetBalances_FinanceScenario(t *testing.T) {
	txs := []models.Transaction{
		expense("34.80", "Lucas", half()),
		expense("48.40", "Alex", half()),
	}

	net := ComputeNetBalances(household, txs)

	// Lucas: +34.80*0.5 - 48.40*0.5 = 17.40 - 24.20
	assertDecimal(t, "-6.80", net["Lucas"])
	assertDecimal(t, "6.80", net["Alex"])
	assert.True(t, net["Lucas"].Add(net["Alex"]).IsZero())
}

func TestComputeNetBalances_EveryMemberPresent(t *testing.T) {
	net := ComputeNetBalances(household, nil)
	require.Len(t, net, 2)
	assert.True(t, net["Lucas"].IsZero())
	assert.True(t, net["Alex"].IsZero())
}

func TestComputeNetBalances_PersonalExpenseNetsToZero(t *testing.T) {
	txs := []models.Transaction{
		expense("12", "Lucas", models.Split{"Lucas": d("1"), "Alex": d("0")}),
	}
	net := ComputeNetBalances(household, txs)
	assert.True(t, net["Lucas"].IsZero())
	assert.True(t, net["Alex"].IsZero())
}

func TestComputeNetBalances_NameNormalization(t *testing.T) {
	canonical := ComputeNetBalances(household, []models.Transaction{
		expense("20", "Lucas", half()),
	})
	messy := ComputeNetBalances(household, []models.Transaction{
		expense("20", " lucas ", models.Split{"LUCAS ": d("0.5"), " alex": d("0.5")}),
	})

	for _, m := range household {
		assert.True(t, canonical[m].Equal(messy[m]), "%s: %s vs %s", m, canonical[m], messy[m])
	}
	assertDecimal(t, "10", messy["Lucas"])
	assertDecimal(t, "-10", messy["Alex"])
}

func TestNormalizeName_MatchesSameMember(t *testing.T) {
	for _, pair := range [][2]string{{" Lucas ", "lucas"}, {"ALEX", "alex"}, {"Alex", " alex\t"}} {
		assert.Equal(t, NormalizeName(pair[0]), NormalizeName(pair[1]))
		assert.True(t, models.SameMember(pair[0], pair[1]))
	}
	assert.NotEqual(t, NormalizeName("Lucas"), NormalizeName("Alex"))
	assert.False(t, models.SameMember("Lucas", "Alex"))
}

func TestComputeNetBalances_UnknownMembersIgnored(t *testing.T) {
	// Unknown payer: nobody is credited, known members still owe their share.
	net := ComputeNetBalances(household, []models.Transaction{
		expense("20", "Sam", half()),
	})
	assertDecimal(t, "-10", net["Lucas"])
	assertDecimal(t, "-10", net["Alex"])
	_, hasSam := net["Sam"]
	assert.False(t, hasSam)

	// Unknown split key: its share is simply not charged to anyone.
	net = ComputeNetBalances(household, []models.Transaction{
		expense("30", "Lucas", models.Split{"Lucas": d("0.5"), "Sam": d("0.5")}),
	})
	assertDecimal(t, "15", net["Lucas"])
	assert.True(t, net["Alex"].IsZero())
}

func TestComputeNetBalances_SumIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	members := []string{"Lucas", "Alex", "Robin"}

	for round := 0; round < 200; round++ {
		var txs []models.Transaction
		for i := 0; i < 1+rng.Intn(25); i++ {
			// Shares in whole percent that sum to exactly 1.
			a := rng.Intn(101)
			b := rng.Intn(101 - a)
			split := models.Split{
				"Lucas": decimal.New(int64(a), -2),
				"Alex":  decimal.New(int64(b), -2),
				"Robin": decimal.New(int64(100-a-b), -2),
			}
			amount := decimal.New(int64(1+rng.Intn(50000)), -2)
			txs = append(txs, expense(amount.String(), members[rng.Intn(3)], split))
		}

		net := ComputeNetBalances(members, txs)
		sum := decimal.Zero
		for _, v := range net {
			sum = sum.Add(v)
		}
		require.True(t, sum.Abs().LessThan(d("0.000001")), "round %d: balances sum to %s", round, sum)
	}
}

func TestSuggestSettlement(t *testing.T) {
	s := SuggestSettlement(household, map[string]decimal.Decimal{"Lucas": d("12.00"), "Alex": d("-12.00")})
	require.NotNil(t, s)
	assert.Equal(t, "Alex", s.From)
	assert.Equal(t, "Lucas", s.To)
	assertDecimal(t, "12.00", s.Amount)
}

func TestSuggestSettlement_RoundsToCents(t *testing.T) {
	s := SuggestSettlement(household, map[string]decimal.Decimal{"Lucas": d("-3.333333"), "Alex": d("3.333333")})
	require.NotNil(t, s)
	assert.Equal(t, "Lucas", s.From)
	assertDecimal(t, "3.33", s.Amount)

	s = SuggestSettlement(household, map[string]decimal.Decimal{"Lucas": d("-0.005"), "Alex": d("0.005")})
	require.NotNil(t, s)
	assertDecimal(t, "0.01", s.Amount)
}

func TestSuggestSettlement_NothingOwed(t *testing.T) {
	assert.Nil(t, SuggestSettlement(household, map[string]decimal.Decimal{"Lucas": decimal.Zero, "Alex": decimal.Zero}))
	assert.Nil(t, SuggestSettlement(household, map[string]decimal.Decimal{"Lucas": d("0.004"), "Alex": d("-0.004")}))
	assert.Nil(t, SuggestSettlement(household, nil))
}

func TestSettlementRoundTrip(t *testing.T) {
	txs := []models.Transaction{
		expense("24", "Lucas", half()),
	}
	net := ComputeNetBalances(household, txs)
	assertDecimal(t, "12", net["Lucas"])
	assertDecimal(t, "-12", net["Alex"])

	s := SuggestSettlement(household, net)
	require.NotNil(t, s)
	assert.Equal(t, "Alex", s.From)
	assert.Equal(t, "Lucas", s.To)
	assertDecimal(t, "12.00", s.Amount)

	record := BuildSettlementRecord(s.From, s.To, s.Amount, models.MustParseDate("2025-08-10"))
	assert.True(t, record.IsSettlement)
	assert.Equal(t, models.StatusPaid, record.Status)
	assert.Equal(t, "Alex", record.Payer)
	assert.True(t, record.Split["Alex"].IsZero())
	assertDecimal(t, "1", record.Split["Lucas"])
	require.NoError(t, record.Validate())

	net = ComputeNetBalances(household, append(txs, record))
	assert.True(t, net["Lucas"].IsZero(), "Lucas = %s", net["Lucas"])
	assert.True(t, net["Alex"].IsZero(), "Alex = %s", net["Alex"])
	assert.Nil(t, SuggestSettlement(household, net))
}

func TestSettlementRoundTrip_ManySmallTransactions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var txs []models.Transaction
	for i := 0; i < 300; i++ {
		amount := decimal.New(int64(1+rng.Intn(999)), -2)
		txs = append(txs, expense(amount.String(), household[rng.Intn(2)], half()))
	}

	s := SuggestSettlement(household, ComputeNetBalances(household, txs))
	if s == nil {
		t.Skip("random data happened to balance out")
	}
	txs = append(txs, BuildSettlementRecord(s.From, s.To, s.Amount, models.MustParseDate("2025-09-01")))

	net := ComputeNetBalances(household, txs)
	for _, m := range household {
		assert.True(t, net[m].Abs().LessThan(d("0.01")), "%s = %s", m, net[m])
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(household, []models.Transaction{
		expense("34.80", "Lucas", half()),
		expense("48.40", "Alex", half()),
	})
	require.Len(t, summary, 2)

	assert.Equal(t, "Lucas", summary[0].MemberName)
	assertDecimal(t, "34.80", summary[0].TotalPaid)
	assertDecimal(t, "41.60", summary[0].TotalOwed)
	assertDecimal(t, "-6.80", summary[0].NetBalance)

	assert.Equal(t, "Alex", summary[1].MemberName)
	assertDecimal(t, "48.40", summary[1].TotalPaid)
	assertDecimal(t, "6.80", summary[1].NetBalance)
}

func TestSimplifyDebts(t *testing.T) {
	members := []string{"A", "B", "C"}
	edges := SimplifyDebts(members, map[string]decimal.Decimal{
		"A": d("30"),
		"B": d("-10"),
		"C": d("-20"),
	})
	require.Len(t, edges, 2)
	assert.Equal(t, "C", edges[0].From)
	assert.Equal(t, "A", edges[0].To)
	assertDecimal(t, "20", edges[0].Amount)
	assert.Equal(t, "B", edges[1].From)
	assert.Equal(t, "A", edges[1].To)
	assertDecimal(t, "10", edges[1].Amount)

	assert.Empty(t, SimplifyDebts(members, map[string]decimal.Decimal{"A": d("0.001"), "B": d("-0.001")}))
}
