package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readLine prints a prompt and reads a single trimmed line.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads a password without echoing when stdin is a terminal,
// falling back to a plain line read for pipes and tests.
func (a *App) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a yes/no question and returns true only on an explicit yes.
func (a *App) confirm(prompt string) bool {
	answer, err := a.readLine(prompt + " [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// showError presents a failure and waits for acknowledgement, the terminal
// version of a blocking alert dialog.
func (a *App) showError(err error) {
	fmt.Fprintf(a.out, "\nError: %v\n", err)
	_, _ = a.readLine("Press Enter to continue...")
}
