package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/compass/internal/cli"
	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/notify"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/alexanderramin/compass/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.compass/compass.db
	dbPath := os.Getenv("COMPASS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".compass", "compass.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()

	// Load the state tree through the persistence adapter
	repo := repository.NewSQLiteStateRepo(database)
	st, err := store.Open(ctx, repo, dateutil.Today(time.Now()))
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}

	accountSvc := service.NewAccountService(st)

	// Wire services
	app := &cli.App{
		Goals:     service.NewGoalService(st),
		Steps:     service.NewStepService(st),
		Today:     service.NewTodayService(st),
		Reminders: service.NewReminderService(st, notify.Desktop{}),
		Insights:  service.NewInsightService(st),
		Account:   accountSvc,
		Backup:    service.NewBackupService(st),
	}

	// Detect interactive terminal for the wizard and dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Count today as an active day once per process, before any command
	// reads the personalization tier.
	if err := accountSvc.TouchActiveDay(ctx); err != nil {
		fmt.Fprintln(os.Stderr, formatter.Warn(err.Error()))
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
