// Package cli implements the interactive expense tracker session: the
// register/login gate, the expense operations, and the menu loop that ties
// them together.
package cli

import (
	"io"

	"expense-cli/internal/prompt"
	"expense-cli/internal/storage"
)

// App drives one interactive session against a single open store handle.
// accountID is zero until a login succeeds; every expense operation is
// scoped to it.
type App struct {
	db        *storage.DB
	prompter  *prompt.Prompter
	out       io.Writer
	accountID int64
}

// NewApp creates an App. The store handle stays open for the session; the
// caller owns closing it.
func NewApp(db *storage.DB, prompter *prompt.Prompter, out io.Writer) *App {
	return &App{db: db, prompter: prompter, out: out}
}
