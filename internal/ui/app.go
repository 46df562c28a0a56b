// Package ui implements the interactive terminal screens.
//
// Screens are intentionally thin: they prompt, call the API client, and
// render. All failures surface as a single human-readable message followed
// by an acknowledgement prompt; nothing is retried automatically.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/NicoCalcagno/Spendly/internal/api"
	"github.com/NicoCalcagno/Spendly/internal/config"
	"github.com/NicoCalcagno/Spendly/internal/log"
	"github.com/NicoCalcagno/Spendly/internal/session"
)

// App drives the two-screen flow: the auth screen until a session exists,
// the main menu afterwards.
type App struct {
	client   *api.Client
	sessions *session.Manager
	cfg      *config.Config
	logger   *log.Logger

	in  *bufio.Reader
	out io.Writer
}

// NewApp wires the screens to their collaborators.
func NewApp(client *api.Client, sessions *session.Manager, cfg *config.Config, logger *log.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &App{
		client:   client,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger.WithComponent("ui"),
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run blocks until the user quits or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Spendly expense tracker")

	if err := a.sessions.Bootstrap(ctx); err != nil {
		a.logger.ErrorContext(ctx, "Bootstrap failed", "error", err)
		a.showError(err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			quit bool
			err  error
		)
		if a.sessions.IsAuthenticated() {
			quit, err = a.mainMenu(ctx)
		} else {
			quit, err = a.authMenu(ctx)
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.showError(err)
			// A rejected credential has already been cleared by the API
			// transport; re-derive so the menus agree with it.
			if api.IsUnauthorized(err) {
				if refreshErr := a.sessions.Refresh(ctx); refreshErr != nil {
					a.logger.WarnContext(ctx, "Session refresh failed", "error", refreshErr)
				}
			}
		}
		if quit {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}
	}
}

func (a *App) mainMenu(ctx context.Context) (quit bool, err error) {
	user := a.sessions.User()
	name := ""
	if user != nil {
		name = firstName(user.FullName)
	}
	fmt.Fprintf(a.out, "\nHi, %s! Here's your spending overview.\n", name)
	fmt.Fprintln(a.out, "  1) Dashboard")
	fmt.Fprintln(a.out, "  2) Add expense")
	fmt.Fprintln(a.out, "  3) Expenses")
	fmt.Fprintln(a.out, "  4) Categories")
	fmt.Fprintln(a.out, "  5) Logout")
	fmt.Fprintln(a.out, "  q) Quit")

	choice, err := a.readLine("> ")
	if err != nil {
		return true, nil
	}

	switch choice {
	case "1":
		return false, a.dashboard(ctx)
	case "2":
		return false, a.addExpense(ctx)
	case "3":
		return false, a.expenseList(ctx)
	case "4":
		return false, a.categories(ctx)
	case "5":
		return false, a.sessions.SignOut()
	case "q", "Q":
		return true, nil
	default:
		return false, nil
	}
}

func firstName(fullName string) string {
	for i, r := range fullName {
		if r == ' ' {
			return fullName[:i]
		}
	}
	if fullName == "" {
		return "there"
	}
	return fullName
}
