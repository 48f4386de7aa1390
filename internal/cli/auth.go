package cli

import (
	"errors"
	"fmt"
	"strings"

	"expense-cli/internal/auth"
	"expense-cli/internal/storage"
)

// Register prompts for the new account's details and creates it. It makes a
// single attempt: a taken username reports failure and returns false, and
// the caller decides whether to invoke it again.
func (a *App) Register() (bool, error) {
	username, err := a.prompter.NonEmptyString("Enter your username: ", "Invalid username. Please try again.")
	if err != nil {
		return false, err
	}
	firstName, err := a.prompter.NonEmptyString("Enter your first name: ", "Invalid first name. Please try again.")
	if err != nil {
		return false, err
	}
	lastName, err := a.prompter.NonEmptyString("Enter your last name: ", "Invalid last name. Please try again.")
	if err != nil {
		return false, err
	}
	password, err := a.promptPassword("Enter your password: ")
	if err != nil {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	id, err := a.db.CreateAccount(username, firstName, lastName, hash)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			fmt.Fprintln(a.out, "Registration failed. Please try again.")
			return false, nil
		}
		return false, err
	}

	fmt.Fprintf(a.out, "Registered successfully with User ID: %d.\n", id)
	return true, nil
}

// Login verifies credentials against the store. An unknown username and a
// wrong password both yield the same explicit invalid-credentials failure.
// On success the account id is bound to the session and the user is greeted.
func (a *App) Login() (bool, error) {
	username, err := a.prompter.NonEmptyString("Enter your username: ", "Invalid username. Please try again.")
	if err != nil {
		return false, err
	}
	password, err := a.promptPassword("Enter the password: ")
	if err != nil {
		return false, err
	}

	account, err := a.db.GetAccountByUsername(username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			fmt.Fprintln(a.out, "Invalid credentials.")
			return false, nil
		}
		return false, err
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		fmt.Fprintln(a.out, "Invalid credentials.")
		return false, nil
	}

	fmt.Fprintln(a.out, "Successfully Logged In")
	fmt.Fprintf(a.out, "Welcome %s %s!\n", strings.TrimSpace(account.FirstName), strings.TrimSpace(account.LastName))
	a.accountID = account.ID
	return true, nil
}

func (a *App) promptPassword(promptText string) (string, error) {
	for {
		pw, err := a.prompter.Secret(promptText)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(pw) != "" {
			return pw, nil
		}
		fmt.Fprintln(a.out, "Invalid password input!")
	}
}
