package models

import "github.com/shopspring/decimal"

// Account represents a registered user identity.
type Account struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
}

// Expense represents a single monetary record owned by one Account.
// Date is a free-form string, never parsed as a calendar date.
type Expense struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Date        string
	Amount      decimal.Decimal
}
