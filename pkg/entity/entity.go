package entity

import (
	"github.com/shopspring/decimal"
)

type TaskStatus string

const (
	StatusTodo     TaskStatus = "todo"
	StatusDone     TaskStatus = "done"
	StatusMigrated TaskStatus = "migrated"
)

type TaskCategory string

const (
	CategoryGeneral TaskCategory = "General"
	CategoryWork    TaskCategory = "Work"
	CategorySchool  TaskCategory = "School"
)

// IsValid reports whether c is one of the three recognized categories.
func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryWork, CategorySchool:
		return true
	default:
		return false
	}
}

// CategoryOrGeneral coerces an arbitrary category string to a recognized category.
func CategoryOrGeneral(s string) TaskCategory {
	c := TaskCategory(s)
	if c.IsValid() {
		return c
	}
	return CategoryGeneral
}

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Status    TaskStatus   `json:"status"`
	Date      string       `json:"date"`
	Category  TaskCategory `json:"category"`
	XPAwarded bool         `json:"xpAwarded"`
	Notes     string       `json:"notes,omitempty"`
	Subtasks  []Subtask    `json:"subtasks,omitempty"`
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	if t.Subtasks != nil {
		subtasks := make([]Subtask, len(t.Subtasks))
		copy(subtasks, t.Subtasks)
		t.Subtasks = subtasks
	}
	return t
}

type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Signed is the transaction's effect on a balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

type JournalEntry struct {
	Date     string    `json:"date"`
	Grateful [3]string `json:"grateful"`
	Thoughts string    `json:"thoughts"`
}

type BrainDump struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Timestamp EpochMillis `json:"timestamp"`
}

type UserStats struct {
	XP         int    `json:"xp"`
	Level      int    `json:"level"`
	Streak     int    `json:"streak"`
	LastActive string `json:"lastActive"`
}

// DefaultStats is the singleton created on first load.
func DefaultStats(today string) UserStats {
	return UserStats{
		XP:         0,
		Level:      1,
		Streak:     1,
		LastActive: today,
	}
}

// Records is a read-only view of every collection, consumed by projections.
type Records struct {
	Tasks          []Task
	Transactions   []Transaction
	JournalEntries []JournalEntry
	BrainDumps     []BrainDump
	Stats          UserStats
}
