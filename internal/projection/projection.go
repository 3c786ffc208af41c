// Package projection derives date-scoped views from record collections.
// Every function is pure: inputs are never mutated and results share no
// memory with them.
package projection

import (
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
)

// DayTasks keeps the tasks dated date, in stored order (newest first).
func DayTasks(tasks []entity.Task, date string) []entity.Task {
	out := make([]entity.Task, 0)
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t.Clone())
		}
	}
	return out
}

// CategoryTasks keeps the tasks of category across all dates, in stored order.
func CategoryTasks(tasks []entity.Task, category entity.TaskCategory) []entity.Task {
	out := make([]entity.Task, 0)
	for _, t := range tasks {
		if t.Category == category {
			out = append(out, t.Clone())
		}
	}
	return out
}

func DayTransactions(transactions []entity.Transaction, date string) []entity.Transaction {
	out := make([]entity.Transaction, 0)
	for _, txn := range transactions {
		if txn.Date == date {
			out = append(out, txn)
		}
	}
	return out
}

func sumOf(transactions []entity.Transaction, date string, typ entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Date == date && txn.Type == typ {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

func DayIncome(transactions []entity.Transaction, date string) decimal.Decimal {
	return sumOf(transactions, date, entity.Income)
}

func DayExpense(transactions []entity.Transaction, date string) decimal.Decimal {
	return sumOf(transactions, date, entity.Expense)
}

// DayBalance is income minus expense for date.
func DayBalance(transactions []entity.Transaction, date string) decimal.Decimal {
	return DayIncome(transactions, date).Sub(DayExpense(transactions, date))
}

// GlobalBalance is the signed sum over every transaction regardless of date.
func GlobalBalance(transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Signed())
	}
	return total
}

// JournalFor returns the entry for date or an empty one when none was written.
func JournalFor(entries []entity.JournalEntry, date string) entity.JournalEntry {
	for _, e := range entries {
		if e.Date == date {
			return e
		}
	}
	return entity.JournalEntry{Date: date, Grateful: [3]string{"", "", ""}, Thoughts: ""}
}
