package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NicoCalcagno/Spendly/internal/api"
)

// presetColors mirrors the palette offered by the category form.
var presetColors = []string{
	"#FF6B6B", "#4ECDC4", "#95E1D3", "#F38181",
	"#AA96DA", "#FCBAD3", "#A8D8EA", "#FFD93D",
}

func (a *App) categories(ctx context.Context) error {
	for {
		categories, err := a.client.ListCategories(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, "\n=== Categories ===")
		for i, c := range categories {
			marker := ""
			if c.IsDefault {
				marker = " (default)"
			}
			fmt.Fprintf(a.out, "%3d) %s %s%s\n", i+1, c.Color, c.Name, marker)
		}

		choice, err := a.readLine("[a]dd, [e]dit <num>, [d]elete <num>, [b]ack > ")
		if err != nil {
			return nil
		}
		switch {
		case choice == "a":
			if err := a.createCategory(ctx); err != nil {
				return err
			}
		case choice == "b" || choice == "":
			return nil
		case len(choice) > 1 && (choice[0] == 'e' || choice[0] == 'd'):
			idx, convErr := strconv.Atoi(strings.TrimSpace(choice[1:]))
			if convErr != nil || idx < 1 || idx > len(categories) {
				fmt.Fprintln(a.out, "Invalid category number.")
				continue
			}
			target := categories[idx-1]
			// Default categories offer no edit or delete controls.
			if target.IsDefault {
				fmt.Fprintf(a.out, "%q is a default category and cannot be changed.\n", target.Name)
				continue
			}
			if choice[0] == 'e' {
				if err := a.editCategory(ctx, target.ID, target.Name, target.Color); err != nil {
					return err
				}
			} else {
				if !a.confirm(fmt.Sprintf("Delete category %q?", target.Name)) {
					continue
				}
				if err := a.client.DeleteCategory(ctx, target.ID); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Deleted.")
			}
		}
	}
}

func (a *App) createCategory(ctx context.Context) error {
	name, err := a.readLine("Name: ")
	if err != nil {
		return err
	}
	color, err := a.pickColor()
	if err != nil {
		return err
	}
	icon, err := a.readLine("Icon [optional]: ")
	if err != nil {
		return err
	}
	description, err := a.readLine("Description [optional]: ")
	if err != nil {
		return err
	}

	category, err := a.client.CreateCategory(ctx, api.CreateCategoryRequest{
		Name:        name,
		Color:       color,
		Icon:        icon,
		Description: description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created category %s.\n", category.Name)
	return nil
}

func (a *App) editCategory(ctx context.Context, id, currentName, currentColor string) error {
	name, err := a.readLine(fmt.Sprintf("Name [%s]: ", currentName))
	if err != nil {
		return err
	}
	if name == "" {
		name = currentName
	}
	color, err := a.readLine(fmt.Sprintf("Color [%s]: ", currentColor))
	if err != nil {
		return err
	}
	if color == "" {
		color = currentColor
	}

	category, err := a.client.UpdateCategory(ctx, id, api.UpdateCategoryRequest{Name: name, Color: color})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated category %s.\n", category.Name)
	return nil
}

func (a *App) pickColor() (string, error) {
	fmt.Fprintln(a.out, "Colors:")
	for i, c := range presetColors {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, c)
	}
	choice, err := a.readLine(fmt.Sprintf("Pick a color [default %s]: ", presetColors[0]))
	if err != nil {
		return "", err
	}
	if choice == "" {
		return presetColors[0], nil
	}
	if idx, convErr := strconv.Atoi(choice); convErr == nil && idx >= 1 && idx <= len(presetColors) {
		return presetColors[idx-1], nil
	}
	// Accept a literal color value too
	return choice, nil
}
