package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkorsten/foresight/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	WorkItems service.WorkItemService
	Tracking  service.TrackingService
	Forecasts service.ForecastService
	Impact    service.ImpactService
	Scenarios service.ScenarioService
	Import    service.ImportService

	// IsInteractive reports whether stdin is a terminal; wizards only run
	// when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "foresight" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "foresight",
		Short: "Delivery forecasting from velocity history and dependency graphs",
	}

	root.AddCommand(
		newProjectCmd(app),
		newWorkCmd(app),
		newTrackCmd(app),
		newForecastCmd(app),
		newSprintCmd(app),
		newImpactCmd(app),
		newCriticalPathCmd(app),
		newScenarioCmd(app),
	)

	return root
}
