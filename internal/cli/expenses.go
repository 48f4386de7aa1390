package cli

import (
	"fmt"
	"strconv"

	"expense-cli/internal/models"
	"expense-cli/internal/render"
)

// placeholder marks an optional field the user left blank.
const placeholder = "-"

// listAndRender loads the account's expenses and renders them when any
// exist. The returned slice's order matches the serial numbers on screen;
// the mapping is only valid until the next listing.
func (a *App) listAndRender() ([]models.Expense, error) {
	expenses, err := a.db.ListExpenses(a.accountID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		fmt.Fprintln(a.out, "No expense found!")
		return nil, nil
	}

	render.ExpenseTable(a.out, expenses)
	return expenses, nil
}

// Add prompts for a new expense and inserts it. Description and date may be
// left blank and default to the placeholder; the amount must be positive.
func (a *App) Add() error {
	title, err := a.prompter.NonEmptyString("Enter the title: ", "Invalid title. Please try again.")
	if err != nil {
		return err
	}
	description, err := a.prompter.Optional("Enter the description (Optional): ")
	if err != nil {
		return err
	}
	amount, err := a.prompter.Numeric("Enter the expense amount: ", "Invalid amount. Please try again.", false, true, false)
	if err != nil {
		return err
	}
	date, err := a.prompter.Optional("Enter the date (Optional): ")
	if err != nil {
		return err
	}

	if description == "" {
		description = placeholder
	}
	if date == "" {
		date = placeholder
	}

	id, err := a.db.InsertExpense(a.accountID, title, description, date, amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Successfully Added Task: %d\n", id)
	return nil
}

// View lists the account's expenses.
func (a *App) View() error {
	_, err := a.listAndRender()
	return err
}

// Edit lists the expenses, asks for a serial number within the displayed
// range, and updates that row by its persistent id. Blank title,
// description, or date keep the old value. The amount is always re-entered
// and always written, even when numerically unchanged.
func (a *App) Edit() error {
	expenses, err := a.listAndRender()
	if err != nil || len(expenses) == 0 {
		return err
	}

	idx, err := a.promptSerial("Enter the serial number of the expense you want to edit: ", len(expenses))
	if err != nil {
		return err
	}
	expense := expenses[idx]

	title, err := a.prompter.Optional("Enter the new title (Optional): ")
	if err != nil {
		return err
	}
	description, err := a.prompter.Optional("Enter the new description (Optional): ")
	if err != nil {
		return err
	}
	date, err := a.prompter.Optional("Enter the new date (Optional): ")
	if err != nil {
		return err
	}
	amount, err := a.prompter.Numeric(
		"Enter the new expense amount (Please enter again if the amount has not changed): ",
		"Invalid amount. Please try again.", false, true, false)
	if err != nil {
		return err
	}

	if title != "" {
		expense.Title = title
	}
	if description != "" {
		expense.Description = description
	}
	if date != "" {
		expense.Date = date
	}
	expense.Amount = amount

	if err := a.db.UpdateExpense(&expense); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Successfully Updated Task: %d\n", expense.ID)
	return nil
}

// Delete lists the expenses, asks for a serial number, and deletes that row
// by its persistent id.
func (a *App) Delete() error {
	expenses, err := a.listAndRender()
	if err != nil || len(expenses) == 0 {
		return err
	}

	idx, err := a.promptSerial("Enter the serial number of the expense you want to delete: ", len(expenses))
	if err != nil {
		return err
	}

	if err := a.db.DeleteExpense(expenses[idx].ID); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Task Deleted Successfully!")
	return nil
}

// promptSerial asks for a serial number in the displayed 1..n range and
// returns it as a 0-based index into the listing.
func (a *App) promptSerial(promptText string, n int) (int, error) {
	options := make([]string, n)
	for i := range options {
		options[i] = strconv.Itoa(i + 1)
	}

	choice, err := a.prompter.FromOptions(promptText, options)
	if err != nil {
		return 0, err
	}

	serial, _ := strconv.Atoi(choice)
	return serial - 1, nil
}
