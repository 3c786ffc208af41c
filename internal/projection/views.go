package projection

import (
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
)

type DayView struct {
	Date          string               `json:"date"`
	Tasks         []entity.Task        `json:"tasks"`
	Completed     int                  `json:"completed"`
	Open          int                  `json:"open"`
	Transactions  []entity.Transaction `json:"transactions"`
	Income        decimal.Decimal      `json:"income"`
	Expense       decimal.Decimal      `json:"expense"`
	Balance       decimal.Decimal      `json:"balance"`
	GlobalBalance decimal.Decimal      `json:"globalBalance"`
	Journal       entity.JournalEntry  `json:"journal"`
	Stats         entity.UserStats     `json:"stats"`
}

// Day composes every projection for date into one view.
func Day(records entity.Records, date string) DayView {
	tasks := DayTasks(records.Tasks, date)
	completed := 0
	for _, t := range tasks {
		if t.Status == entity.StatusDone {
			completed++
		}
	}
	return DayView{
		Date:          date,
		Tasks:         tasks,
		Completed:     completed,
		Open:          len(tasks) - completed,
		Transactions:  DayTransactions(records.Transactions, date),
		Income:        DayIncome(records.Transactions, date),
		Expense:       DayExpense(records.Transactions, date),
		Balance:       DayBalance(records.Transactions, date),
		GlobalBalance: GlobalBalance(records.Transactions),
		Journal:       JournalFor(records.JournalEntries, date),
		Stats:         records.Stats,
	}
}

type DaySummary struct {
	Date       string          `json:"date"`
	Tasks      int             `json:"tasks"`
	Completed  int             `json:"completed"`
	Balance    decimal.Decimal `json:"balance"`
	HasJournal bool            `json:"hasJournal"`
}

// Week summarizes the seven days centered on date (date-3 through date+3).
func Week(records entity.Records, date string) []DaySummary {
	out := make([]DaySummary, 0, 7)
	for offset := -3; offset <= 3; offset++ {
		d := entity.AddDays(date, offset)
		summary := DaySummary{Date: d, Balance: DayBalance(records.Transactions, d)}
		for _, t := range records.Tasks {
			if t.Date != d {
				continue
			}
			summary.Tasks++
			if t.Status == entity.StatusDone {
				summary.Completed++
			}
		}
		for _, e := range records.JournalEntries {
			if e.Date == d {
				summary.HasJournal = true
				break
			}
		}
		out = append(out, summary)
	}
	return out
}
