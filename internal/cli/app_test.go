package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"expense-cli/internal/auth"
	"expense-cli/internal/prompt"
	"expense-cli/internal/storage"
)

func newTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.NewDB(":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { db.Close() })
	return db
}

// newTestApp builds an App whose prompts are fed from the scripted input.
// strings.Reader is not a terminal, so password prompts read plain lines.
func newTestApp(db *storage.DB, input string) (*App, *bytes.Buffer) {
	out := new(bytes.Buffer)
	prompter := prompt.New(strings.NewReader(input), out, nil)
	return NewApp(db, prompter, out), out
}

func seedAccount(t *testing.T, db *storage.DB, username, first, last, password string) int64 {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	id, err := db.CreateAccount(username, first, last, hash)
	require.NoError(t, err)
	return id
}

func addExpense(t *testing.T, db *storage.DB, owner int64, title, description, date, amount string) int64 {
	t.Helper()
	id, err := db.InsertExpense(owner, title, description, date, decimal.RequireFromString(amount))
	require.NoError(t, err)
	return id
}

func countOccurrences(s, substr string) int {
	return strings.Count(s, substr)
}
