package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers restoration of the original value; the unset makes
	// sure the default path is exercised even when the env carries DB_PATH.
	t.Setenv("DB_PATH", "")
	os.Unsetenv("DB_PATH")

	cfg := Load()
	assert.Equal(t, "database.db", cfg.DatabasePath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/expenses-test.db")

	cfg := Load()
	assert.Equal(t, "/tmp/expenses-test.db", cfg.DatabasePath)
}
