package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/money"
)

// paymentMethods are the presets offered by the add-expense form. The
// first one is the default.
var paymentMethods = []string{"card", "cash", "bank_transfer", "other"}

func (a *App) addExpense(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n=== Add expense ===")

	description, err := a.readLine("Description: ")
	if err != nil {
		return err
	}
	amount, err := a.readLine("Amount: ")
	if err != nil {
		return err
	}

	dateStr, err := a.readLine("Date [YYYY-MM-DD, empty = today]: ")
	if err != nil {
		return err
	}
	date := api.Today()
	if dateStr != "" {
		var parsed api.Date
		if unmarshalErr := parsed.UnmarshalJSON([]byte(`"` + dateStr + `"`)); unmarshalErr != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
		}
		date = parsed
	}

	method, err := a.pickPaymentMethod()
	if err != nil {
		return err
	}

	notes, err := a.readLine("Notes [optional]: ")
	if err != nil {
		return err
	}

	categoryID, err := a.pickCategory(ctx)
	if err != nil {
		return err
	}

	expense, err := a.client.CreateExpense(ctx, api.CreateExpenseRequest{
		Description:   description,
		Amount:        amount,
		ExpenseDate:   date,
		PaymentMethod: method,
		Notes:         notes,
		CategoryID:    categoryID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s (%s)\n", expense.Description, formatAmount(expense.Amount))
	if expense.AISuggestedCategory != nil && expense.Category == nil {
		fmt.Fprintf(a.out, "Suggested category: %s (confidence %.0f%%)\n",
			expense.AISuggestedCategory.Name, expense.AIConfidenceScore*100)
	}
	return nil
}

func (a *App) pickPaymentMethod() (string, error) {
	method, err := a.readLine(fmt.Sprintf("Payment method %v [default %s]: ", paymentMethods, paymentMethods[0]))
	if err != nil {
		return "", err
	}
	if method == "" {
		return paymentMethods[0], nil
	}
	return method, nil
}

// pickCategory lists categories and returns the chosen id, or empty to let
// the server suggest one.
func (a *App) pickCategory(ctx context.Context) (string, error) {
	categories, err := a.client.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "", nil
	}

	fmt.Fprintln(a.out, "Category [empty = let the server suggest]:")
	for i, c := range categories {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, c.Name)
	}
	choice, err := a.readLine("> ")
	if err != nil {
		return "", err
	}
	if choice == "" {
		return "", nil
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(categories) {
		return "", fmt.Errorf("invalid category choice %q", choice)
	}
	return categories[idx-1].ID, nil
}

func (a *App) expenseList(ctx context.Context) error {
	page := 1
	for {
		list, err := a.client.ListExpenses(ctx, page, a.cfg.PageSize)
		if err != nil {
			return err
		}

		fmt.Fprintf(a.out, "\n=== Expenses (page %d of %d, %d total) ===\n", list.Page, list.TotalPages, list.Total)
		if len(list.Items) == 0 {
			fmt.Fprintln(a.out, "No expenses on this page.")
		}
		for i, e := range list.Items {
			fmt.Fprintf(a.out, "%3d) ", i+1)
			printExpense(a, e)
		}

		choice, err := a.readLine("[n]ext page, [p]revious, [d]elete <num>, [b]ack > ")
		if err != nil {
			return nil
		}
		switch {
		case choice == "n" && page < list.TotalPages:
			page++
		case choice == "p" && page > 1:
			page--
		case choice == "b" || choice == "":
			return nil
		case len(choice) > 1 && choice[0] == 'd':
			idx, convErr := strconv.Atoi(strings.TrimSpace(choice[1:]))
			if convErr != nil || idx < 1 || idx > len(list.Items) {
				fmt.Fprintln(a.out, "Invalid expense number.")
				continue
			}
			target := list.Items[idx-1]
			if !a.confirm(fmt.Sprintf("Delete %q?", target.Description)) {
				continue
			}
			if err := a.client.DeleteExpense(ctx, target.ID); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Deleted.")
		}
	}
}

func printExpense(a *App, e api.Expense) {
	category := ""
	if e.Category != nil {
		category = " [" + e.Category.Name + "]"
	}
	fmt.Fprintf(a.out, "%s  %-30s%s  -%s\n",
		e.ExpenseDate.Format("2006-01-02"), e.Description, category, formatAmount(e.Amount))
}

// formatAmount renders a wire amount for display, falling back to the raw
// string when it does not parse.
func formatAmount(amount string) string {
	cents, err := money.ParseCents(amount)
	if err != nil {
		return "$" + amount
	}
	return cents.Format()
}
