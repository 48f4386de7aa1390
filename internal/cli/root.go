package cli

import (
	"errors"
	"fmt"
	"io"

	"expense-cli/internal/prompt"
)

// Run drives the whole session: one register-or-login gate, then the
// expense menu until the user quits. Registration runs once and the program
// ends regardless of outcome; a failed login ends the program too.
//
// Interrupts have two scopes: inside the menu loop they re-show the menu,
// anywhere else they end the session with a farewell. End of input always
// ends the session.
func (a *App) Run() error {
	mode, err := a.prompter.FromOptions("Enter the mode (Register [R] / Login [L]): ", []string{"R", "L"})
	if err != nil {
		return a.finish(err)
	}

	if mode == "R" {
		if _, err := a.Register(); err != nil {
			return a.finish(err)
		}
		return nil
	}

	ok, err := a.Login()
	if err != nil {
		return a.finish(err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Exiting...")
		return nil
	}

	for {
		choice, err := a.prompter.FromOptions(
			"Enter the mode (Add [A] / View [V] / Edit [E] / Delete [D] / Quit [Q]): ",
			[]string{"A", "V", "E", "D", "Q"})
		if err != nil {
			if errors.Is(err, prompt.ErrInterrupted) {
				continue
			}
			return a.finish(err)
		}

		switch choice {
		case "A":
			err = a.Add()
		case "V":
			err = a.View()
		case "E":
			err = a.Edit()
		case "D":
			err = a.Delete()
		case "Q":
			fmt.Fprintln(a.out, "Exiting...")
			return nil
		}
		if err != nil {
			if errors.Is(err, prompt.ErrInterrupted) {
				continue
			}
			return a.finish(err)
		}
	}
}

// finish maps end-of-session conditions: an interrupt or end of input is a
// normal farewell, anything else propagates as a real error.
func (a *App) finish(err error) error {
	if errors.Is(err, prompt.ErrInterrupted) || errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out, "Exiting...")
		return nil
	}
	return err
}
