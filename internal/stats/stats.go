// Package stats derives display statistics from an expense collection.
//
// Summarize is a pure function: no I/O, no clock access (the reference
// time is injected), no mutation of its input.
package stats

import (
	"fmt"
	"time"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/money"
)

// CategoryAmount is one slice of the per-category breakdown chart.
type CategoryAmount struct {
	ID     string
	Name   string
	Color  string
	Amount money.Cents
}

// Summary holds the dashboard statistics for one expense collection.
type Summary struct {
	Total      money.Cents
	MonthTotal money.Cents
	Count      int
	MonthCount int
	Breakdown  []CategoryAmount
}

// Summarize computes totals and the current-month category breakdown.
//
// An expense belongs to the current month when its date matches the month
// and year of now; the day is irrelevant. Expenses without a category are
// counted in the month totals but excluded from the breakdown. Breakdown
// entries appear in first-encounter order, and each entry's name and color
// come from the first expense seen for that category id.
//
// A malformed amount fails the whole aggregation rather than silently
// skewing the totals.
func Summarize(expenses []api.Expense, now time.Time) (Summary, error) {
	summary := Summary{Count: len(expenses)}

	byCategory := make(map[string]int) // category id -> index into Breakdown

	for _, e := range expenses {
		amount, err := money.ParseCents(e.Amount)
		if err != nil {
			return Summary{}, fmt.Errorf("expense %s: amount %q: %w", e.ID, e.Amount, err)
		}
		summary.Total += amount

		if e.ExpenseDate.Month() != now.Month() || e.ExpenseDate.Year() != now.Year() {
			continue
		}
		summary.MonthTotal += amount
		summary.MonthCount++

		if e.Category == nil {
			continue
		}
		idx, ok := byCategory[e.Category.ID]
		if !ok {
			idx = len(summary.Breakdown)
			byCategory[e.Category.ID] = idx
			summary.Breakdown = append(summary.Breakdown, CategoryAmount{
				ID:    e.Category.ID,
				Name:  e.Category.Name,
				Color: e.Category.Color,
			})
		}
		summary.Breakdown[idx].Amount += amount
	}

	return summary, nil
}
