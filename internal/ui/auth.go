package ui

import (
	"context"
	"fmt"
)

func (a *App) authMenu(ctx context.Context) (quit bool, err error) {
	fmt.Fprintln(a.out, "\n  1) Login")
	fmt.Fprintln(a.out, "  2) Register")
	fmt.Fprintln(a.out, "  q) Quit")

	choice, err := a.readLine("> ")
	if err != nil {
		return true, nil
	}

	switch choice {
	case "1":
		return false, a.login(ctx)
	case "2":
		return false, a.register(ctx)
	case "q", "Q":
		return true, nil
	default:
		return false, nil
	}
}

func (a *App) login(ctx context.Context) error {
	email, err := a.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	if err := a.sessions.SignIn(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Welcome back!")
	return nil
}

func (a *App) register(ctx context.Context) error {
	fullName, err := a.readLine("Full name: ")
	if err != nil {
		return err
	}
	email, err := a.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}

	// Registration signs the new account in with the same credentials.
	if err := a.sessions.SignUp(ctx, email, password, fullName); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created, you are signed in.")
	return nil
}
