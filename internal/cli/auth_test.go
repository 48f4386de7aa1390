package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)

	app, out := newTestApp(db, "alice\nAlice\nDoe\nSecret1!\n")
	ok, err := app.Register()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Registered successfully with User ID: 1.")

	app, out = newTestApp(db, "alice\nSecret1!\n")
	ok, err = app.Login()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), app.accountID)
	assert.Contains(t, out.String(), "Welcome Alice Doe!")
}

func TestRegisterDuplicateUsernameFailsOnce(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "alice", "Alice", "Doe", "Secret1!")

	app, out := newTestApp(db, "alice\nOther\nPerson\npw\n")
	ok, err := app.Register()
	require.NoError(t, err, "a taken username is a reported failure, not an error")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Registration failed. Please try again.")

	// The original account is untouched.
	account, err := db.GetAccountByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", account.FirstName)
}

func TestRegisterRetriesBlankFields(t *testing.T) {
	db := newTestDB(t)

	// Blank username and blank password are both re-prompted.
	app, out := newTestApp(db, "\nbob\nBob\nSmith\n\npw\n")
	ok, err := app.Register()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Invalid username. Please try again.")
	assert.Contains(t, out.String(), "Invalid password input!")
}

func TestLoginUnknownUsername(t *testing.T) {
	db := newTestDB(t)

	app, out := newTestApp(db, "nobody\npw\n")
	ok, err := app.Login()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Invalid credentials.")
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "alice", "Alice", "Doe", "Secret1!")

	app, out := newTestApp(db, "alice\nwrong\n")
	ok, err := app.Login()
	require.NoError(t, err, "a wrong password is a defined failure, never an error")
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Invalid credentials.")
	assert.NotContains(t, out.String(), "Welcome")
	assert.Zero(t, app.accountID)
}
