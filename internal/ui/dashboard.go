package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/stats"
)

const chartWidth = 30

func (a *App) dashboard(ctx context.Context) error {
	var (
		list       *api.ExpenseList
		categories []api.Category
	)

	// The two fetches are independent; load them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = a.client.ListExpenses(gctx, 1, a.cfg.PageSize)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = a.client.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	summary, err := stats.Summarize(list.Items, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\n=== Dashboard ===")
	fmt.Fprintf(a.out, "This month: %s  (%d expenses)\n", summary.MonthTotal.Format(), summary.MonthCount)
	fmt.Fprintf(a.out, "All time:   %s  (%d expenses, %d categories)\n", summary.Total.Format(), summary.Count, len(categories))

	if len(summary.Breakdown) > 0 {
		fmt.Fprintln(a.out, "\nSpending by category:")
		renderBreakdown(a, summary)
	}

	if len(list.Items) == 0 {
		fmt.Fprintln(a.out, "\nNo expenses yet. Add one to get started!")
		return nil
	}

	fmt.Fprintln(a.out, "\nRecent expenses:")
	for _, e := range list.Items {
		printExpense(a, e)
	}
	if list.TotalPages > 1 {
		fmt.Fprintf(a.out, "(page 1 of %d, %d total)\n", list.TotalPages, list.Total)
	}
	return nil
}

// renderBreakdown draws a proportional horizontal bar chart, the terminal
// stand-in for the pie chart.
func renderBreakdown(a *App, summary stats.Summary) {
	nameWidth := 0
	for _, entry := range summary.Breakdown {
		if len(entry.Name) > nameWidth {
			nameWidth = len(entry.Name)
		}
	}

	for _, entry := range summary.Breakdown {
		share := 0.0
		if summary.MonthTotal > 0 {
			share = float64(entry.Amount) / float64(summary.MonthTotal)
		}
		bar := strings.Repeat("█", int(share*chartWidth+0.5))
		if bar == "" && entry.Amount > 0 {
			bar = "▏"
		}
		fmt.Fprintf(a.out, "  %-*s %8s %5.1f%% %s\n",
			nameWidth, entry.Name, entry.Amount.Format(), share*100, bar)
	}
}
