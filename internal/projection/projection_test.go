package projection_test

import (
	"testing"

	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, amount int64, typ entity.TransactionType, date string) entity.Transaction {
	return entity.Transaction{ID: id, Amount: decimal.NewFromInt(amount), Type: typ, Date: date}
}

func decEq(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestDayTasks(t *testing.T) {
	t.Parallel()
	tasks := []entity.Task{
		{ID: "3", Date: "2025-06-01", Category: entity.CategoryWork},
		{ID: "2", Date: "2025-06-02", Category: entity.CategoryWork, Subtasks: []entity.Subtask{{ID: "s", Text: "x"}}},
		{ID: "1", Date: "2025-06-01", Category: entity.CategorySchool},
	}
	day := projection.DayTasks(tasks, "2025-06-01")
	require.Len(t, day, 2)
	assert.Equal(t, "3", day[0].ID)
	assert.Equal(t, "1", day[1].ID)
	assert.Empty(t, projection.DayTasks(tasks, "2030-01-01"))

	t.Run("category across dates", func(t *testing.T) {
		work := projection.CategoryTasks(tasks, entity.CategoryWork)
		require.Len(t, work, 2)
		assert.Equal(t, "3", work[0].ID)
		assert.Equal(t, "2", work[1].ID)
		work[1].Subtasks[0].Text = "changed"
		assert.Equal(t, "x", tasks[1].Subtasks[0].Text, "projection doesn't alias input")
	})
}

func TestBalances(t *testing.T) {
	t.Parallel()
	transactions := []entity.Transaction{
		txn("a", 50, entity.Income, "2025-06-01"),
		txn("b", 20, entity.Expense, "2025-06-01"),
		txn("c", 100, entity.Expense, "2025-06-02"),
		{ID: "d", Amount: decimal.RequireFromString("0.10"), Type: entity.Income, Date: "2025-06-02"},
		{ID: "e", Amount: decimal.RequireFromString("0.20"), Type: entity.Income, Date: "2025-06-02"},
	}
	testCases := []struct {
		Desc    string
		Date    string
		Income  string
		Expense string
		Balance string
		Count   int
	}{
		{Desc: "income and expense", Date: "2025-06-01", Income: "50", Expense: "20", Balance: "30", Count: 2},
		{Desc: "exact decimal sums", Date: "2025-06-02", Income: "0.3", Expense: "100", Balance: "-99.7", Count: 3},
		{Desc: "empty day", Date: "2025-06-03", Income: "0", Expense: "0", Balance: "0", Count: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			decEq(t, tc.Income, projection.DayIncome(transactions, tc.Date))
			decEq(t, tc.Expense, projection.DayExpense(transactions, tc.Date))
			decEq(t, tc.Balance, projection.DayBalance(transactions, tc.Date))
			assert.Len(t, projection.DayTransactions(transactions, tc.Date), tc.Count)
		})
	}
	t.Run("global balance ignores dates", func(t *testing.T) {
		decEq(t, "-69.7", projection.GlobalBalance(transactions))
	})
}

func TestJournalFor(t *testing.T) {
	t.Parallel()
	entries := []entity.JournalEntry{{Date: "2025-06-01", Grateful: [3]string{"a", "b", "c"}, Thoughts: "t"}}
	assert.Equal(t, entries[0], projection.JournalFor(entries, "2025-06-01"))
	assert.Equal(t, entity.JournalEntry{Date: "2025-06-05", Grateful: [3]string{"", "", ""}}, projection.JournalFor(entries, "2025-06-05"))
}

func TestDayScenario(t *testing.T) {
	t.Parallel()
	records := entity.Records{
		Tasks: []entity.Task{
			{ID: "1", Text: "Buy milk", Status: entity.StatusDone, Date: "2025-06-01", Category: entity.CategoryGeneral, XPAwarded: true},
			{ID: "2", Text: "Call mom", Status: entity.StatusTodo, Date: "2025-06-01", Category: entity.CategoryGeneral},
		},
		Transactions: []entity.Transaction{
			txn("a", 50, entity.Income, "2025-06-01"),
			txn("b", 20, entity.Expense, "2025-06-01"),
		},
		Stats: entity.UserStats{XP: 10, Level: 1, Streak: 1, LastActive: "2025-06-01"},
	}
	view := projection.Day(records, "2025-06-01")
	assert.Len(t, view.Tasks, 2)
	assert.Equal(t, 1, view.Completed)
	assert.Equal(t, 1, view.Open)
	decEq(t, "30", view.Balance)
	decEq(t, "30", view.GlobalBalance)
	assert.Equal(t, "2025-06-01", view.Journal.Date)
	assert.Equal(t, records.Stats, view.Stats)

	t.Run("week", func(t *testing.T) {
		week := projection.Week(records, "2025-06-02")
		require.Len(t, week, 7)
		assert.Equal(t, "2025-05-30", week[0].Date)
		assert.Equal(t, "2025-06-05", week[6].Date)
		assert.Equal(t, 2, week[2].Tasks)
		assert.Equal(t, 1, week[2].Completed)
		decEq(t, "30", week[2].Balance)
		assert.False(t, week[2].HasJournal)
	})
}
