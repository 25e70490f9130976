package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Janjiran/workoutkit/internal/capability"
	"github.com/Janjiran/workoutkit/internal/cli"
	"github.com/Janjiran/workoutkit/internal/db"
	"github.com/Janjiran/workoutkit/internal/repository"
	"github.com/Janjiran/workoutkit/internal/service"
	"github.com/Janjiran/workoutkit/internal/workout"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.workoutkit/plans.db
	dbPath := os.Getenv("WORKOUTKIT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".workoutkit", "plans.db")
	}

	// Open plan store
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening plan store: %w", err)
	}
	defer database.Close()

	// Platform capability version, overridable for testing degraded
	// platforms.
	version := capability.PowerAlertMinVersion
	if v := os.Getenv("WORKOUTKIT_PLATFORM_VERSION"); v != "" {
		version, err = strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid WORKOUTKIT_PLATFORM_VERSION %q: %w", v, err)
		}
	}
	caps := capability.NewRuleset(version)
	auth := capability.NewStaticAuthorizer(capability.AuthorizationStatus(os.Getenv("WORKOUTKIT_AUTH")))

	// Wire services
	var observers []service.OperationObserver
	if os.Getenv("WORKOUTKIT_LOG") != "" {
		observers = append(observers, service.NewLogObserver(os.Stderr))
	}
	plans := service.NewPlanService(workout.NewParser(caps), repository.NewSQLitePlanRepo(database), auth, observers...)

	app := &cli.App{
		Plans: plans,
		Auth:  auth,
	}

	// Detect interactive terminal for the preview viewer and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
