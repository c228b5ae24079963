package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mkorsten/foresight/internal/cli"
	"github.com/mkorsten/foresight/internal/db"
	"github.com/mkorsten/foresight/internal/repository"
	"github.com/mkorsten/foresight/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.foresight/foresight.db
	dbPath := os.Getenv("FORESIGHT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".foresight", "foresight.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	velocityRepo := repository.NewSQLiteVelocityRepo(database)
	capacityRepo := repository.NewSQLiteCapacityRepo(database)
	forecastRepo := repository.NewSQLiteForecastRepo(database)
	chainRepo := repository.NewSQLiteChainRepo(database)
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Structured use-case logging goes to stderr when requested.
	var observers []service.UseCaseObserver
	if os.Getenv("FORESIGHT_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo),
		WorkItems: service.NewWorkItemService(workItemRepo),
		Tracking:  service.NewTrackingService(projectRepo, velocityRepo, capacityRepo),
		Forecasts: service.NewForecastService(projectRepo, workItemRepo, velocityRepo, capacityRepo, forecastRepo, observers...),
		Impact:    service.NewImpactService(projectRepo, workItemRepo, chainRepo, observers...),
		Scenarios: service.NewScenarioService(projectRepo, workItemRepo, velocityRepo, capacityRepo, scenarioRepo, uow, observers...),
		Import:    service.NewImportService(uow, observers...),
	}

	// Detect interactive terminal for wizard entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
