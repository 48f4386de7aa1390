package main

import (
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"expense-cli/internal/cli"
	"expense-cli/internal/config"
	"expense-cli/internal/logger"
	"expense-cli/internal/prompt"
	"expense-cli/internal/storage"
)

func main() {
	logger.Init()

	cfg := config.Load()

	db, err := storage.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
		os.Exit(1)
	}
	defer db.Close()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	prompter := prompt.New(os.Stdin, os.Stdout, interrupts)
	app := cli.NewApp(db, prompter, os.Stdout)

	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("session ended with error")
		os.Exit(1)
	}
}
