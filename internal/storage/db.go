package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"expense-cli/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

var (
	// ErrDuplicateUsername is returned when registering a username that is
	// already taken. Usernames are case-sensitive unique.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAccountNotFound is returned when no account matches the username.
	ErrAccountNotFound = errors.New("account not found")
)

// DB wraps a sql.DB connection.
type DB struct {
	conn *sql.DB
}

// NewDB opens a database connection and runs migrations. The pool is capped
// at a single connection: the program is a single interactive session, and
// one connection keeps the foreign-key pragma (and :memory: test databases)
// attached to the same underlying store.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL,
			amount TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

// CreateAccount inserts a new account and returns its id. A taken username
// yields ErrDuplicateUsername.
func (db *DB) CreateAccount(username, firstName, lastName, passwordHash string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO users (username, first_name, last_name, password_hash) VALUES (?, ?, ?, ?)",
		username, firstName, lastName, passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}

	return result.LastInsertId()
}

// GetAccountByUsername retrieves an account by its exact username.
func (db *DB) GetAccountByUsername(username string) (*models.Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, first_name, last_name, password_hash FROM users WHERE username = ?",
		username,
	)

	var a models.Account
	if err := row.Scan(&a.ID, &a.Username, &a.FirstName, &a.LastName, &a.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// InsertExpense inserts a new expense for the owner and returns its id.
// The amount is stored as text so the value round-trips exactly as entered.
func (db *DB) InsertExpense(ownerID int64, title, description, date string, amount decimal.Decimal) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO expenses (user_id, title, description, date, amount) VALUES (?, ?, ?, ?, ?)",
		ownerID, title, description, date, amount.String(),
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// ListExpenses retrieves the owner's expenses ordered by date descending.
// The date column is TEXT, so this is a byte-wise string sort, not a
// calendar-aware one. Swapping the comparator means changing this one query.
func (db *DB) ListExpenses(ownerID int64) ([]models.Expense, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, title, description, date, amount FROM expenses WHERE user_id = ? ORDER BY date DESC",
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var amount string
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.Date, &amount); err != nil {
			return nil, err
		}
		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("stored amount for expense %d: %w", e.ID, err)
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// UpdateExpense updates an existing expense in place, keyed by its id.
func (db *DB) UpdateExpense(e *models.Expense) error {
	_, err := db.conn.Exec(
		"UPDATE expenses SET title = ?, description = ?, date = ?, amount = ? WHERE id = ?",
		e.Title, e.Description, e.Date, e.Amount.String(), e.ID,
	)
	return err
}

// DeleteExpense removes an expense by its id.
func (db *DB) DeleteExpense(id int64) error {
	_, err := db.conn.Exec("DELETE FROM expenses WHERE id = ?", id)
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
