package recurrence

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

var household = []string{"Lucas", "Alex"}

func room(lastCleaned string, freq int, assignee string) models.RecurringTask {
	return models.RecurringTask{
		ID:            "r1",
		Kind:          models.KindCleaning,
		Name:          "Bathroom",
		LastCompleted: models.MustParseDate(lastCleaned),
		FrequencyDays: freq,
		Assignee:      assignee,
	}
}

func TestCleaningScenario(t *testing.T) {
	task := room("2025-08-01", 7, "Lucas")

	// Due exactly on 2025-08-08.
	aug8 := models.MustParseDate("2025-08-08")
	assert.Equal(t, "2025-08-08", NextDueDate(task).String())
	assert.True(t, IsOverdueOrDueToday(task, aug8))
	assert.False(t, IsUpcoming(task, aug8, 7))
	assert.Equal(t, StatusDueToday, Classify(task, aug8, 7))
	assert.Equal(t, "due today", DueLabel(DaysUntilDue(task, aug8)))

	// Two days overdue on 2025-08-10.
	aug10 := models.MustParseDate("2025-08-10")
	assert.Equal(t, -2, DaysUntilDue(task, aug10))
	assert.Equal(t, StatusOverdue, Classify(task, aug10, 7))
	assert.Equal(t, "2d overdue", DueLabel(DaysUntilDue(task, aug10)))

	done := MarkCompleted(task, aug10, household)
	assert.Equal(t, "2025-08-10", done.LastCompleted.String())
	assert.Equal(t, "2025-08-17", NextDueDate(done).String())
	assert.Equal(t, "Alex", done.Assignee)

	// The input is left untouched.
	assert.Equal(t, "2025-08-01", task.LastCompleted.String())
	assert.Equal(t, "Lucas", task.Assignee)
}

func TestMarkCompleted_PlantsDoNotRotate(t *testing.T) {
	plant := models.RecurringTask{
		Kind:          models.KindPlants,
		Name:          "Monstera",
		LastCompleted: models.MustParseDate("2025-08-01"),
		FrequencyDays: 7,
	}
	done := MarkCompleted(plant, models.MustParseDate("2025-08-05"), household)
	assert.Equal(t, "2025-08-05", done.LastCompleted.String())
	assert.Empty(t, done.Assignee)
}

func TestIsUpcoming_Window(t *testing.T) {
	today := models.MustParseDate("2025-08-08")
	tests := []struct {
		name string
		last string
		freq int
		want bool
	}{
		{"due today is not upcoming", "2025-08-01", 7, false},
		{"overdue is not upcoming", "2025-07-20", 7, false},
		{"tomorrow", "2025-08-02", 7, true},
		{"window edge inclusive", "2025-08-08", 7, true},
		{"beyond window", "2025-08-08", 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := room(tt.last, tt.freq, "")
			assert.Equal(t, tt.want, IsUpcoming(task, today, 7))
		})
	}
}

func TestDueLabel(t *testing.T) {
	assert.Equal(t, "3d overdue", DueLabel(-3))
	assert.Equal(t, "due today", DueLabel(0))
	assert.Equal(t, "in 2d", DueLabel(2))
}

func TestRotate(t *testing.T) {
	assert.Equal(t, "Alex", Rotate(household, "Lucas"))
	assert.Equal(t, "Lucas", Rotate(household, "Alex"))
	assert.Equal(t, "Alex", Rotate(household, " lucas "))
	assert.Equal(t, "Lucas", Rotate(household, "Sam"), "unknown assignee goes to the first member")
	assert.Equal(t, "Sam", Rotate(nil, "Sam"))

	three := []string{"A", "B", "C"}
	assert.Equal(t, "B", Rotate(three, "A"))
	assert.Equal(t, "A", Rotate(three, "C"))
}

func TestRotate_IsInvolutionForTwoMembers(t *testing.T) {
	for _, p := range household {
		assert.Equal(t, p, Rotate(household, Rotate(household, p)))
	}
}

// For any task and day, the due and upcoming buckets never overlap, and a
// task that is neither is strictly beyond the window.
func TestClassification_Partitions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := models.MustParseDate("2025-01-01")

	for i := 0; i < 2000; i++ {
		task := models.RecurringTask{
			Kind:          models.KindPlants,
			Name:          "p",
			LastCompleted: base.AddDays(rng.Intn(400)),
			FrequencyDays: 1 + rng.Intn(30),
		}
		today := base.AddDays(rng.Intn(440))
		window := rng.Intn(14)

		due := IsOverdueOrDueToday(task, today)
		upcoming := IsUpcoming(task, today, window)
		require.False(t, due && upcoming, "task %+v on %s is both due and upcoming", task, today)

		status := Classify(task, today, window)
		switch {
		case due:
			require.Contains(t, []Status{StatusOverdue, StatusDueToday}, status)
		case upcoming:
			require.Equal(t, StatusUpcoming, status)
		default:
			require.Equal(t, StatusNotYetDue, status)
			require.True(t, NextDueDate(task).After(today.AddDays(window)))
		}

		if NextDueDate(task) == today {
			require.Equal(t, StatusDueToday, status)
		}
	}
}

func TestMarkCompleted_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	base := models.MustParseDate("2024-01-01")

	for i := 0; i < 500; i++ {
		task := room(base.AddDays(rng.Intn(300)).String(), 1+rng.Intn(60), household[rng.Intn(2)])
		d := base.AddDays(rng.Intn(700))

		done := MarkCompleted(task, d, household)
		require.Equal(t, d, done.LastCompleted)
		require.Equal(t, d.AddDays(task.FrequencyDays), NextDueDate(done))
		require.Equal(t, task.Assignee, Rotate(household, done.Assignee))
	}
}

func TestSchedule(t *testing.T) {
	today := models.MustParseDate("2025-08-08")
	tasks := []models.RecurringTask{
		{ID: "later", Kind: models.KindPlants, LastCompleted: models.MustParseDate("2025-08-07"), FrequencyDays: 14},
		{ID: "upcoming", Kind: models.KindPlants, LastCompleted: models.MustParseDate("2025-08-06"), FrequencyDays: 3},
		{ID: "today", Kind: models.KindPlants, LastCompleted: models.MustParseDate("2025-08-01"), FrequencyDays: 7},
		{ID: "overdue", Kind: models.KindPlants, LastCompleted: models.MustParseDate("2025-07-20"), FrequencyDays: 7},
	}

	b := Schedule(tasks, today, 7)
	require.Len(t, b.Due, 2)
	assert.Equal(t, "overdue", b.Due[0].Task.ID)
	assert.Equal(t, "today", b.Due[1].Task.ID)
	assert.Equal(t, "12d overdue", b.Due[0].Label)

	require.Len(t, b.Upcoming, 1)
	assert.Equal(t, "upcoming", b.Upcoming[0].Task.ID)
	assert.Equal(t, "in 1d", b.Upcoming[0].Label)

	require.Len(t, b.Later, 1)
	assert.Equal(t, "later", b.Later[0].Task.ID)
}
