package cli

import (
	"github.com/alexanderramin/compass/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals     service.GoalService
	Steps     service.StepService
	Today     service.TodayService
	Reminders service.ReminderService
	Insights  service.InsightService
	Account   service.AccountService
	Backup    service.BackupService

	// IsInteractive reports whether stdin/stdout is a terminal; gates
	// the huh wizard and the dashboard.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "compass" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "compass",
		Short: "Gentle personal goal and step tracker",
	}

	root.AddCommand(
		newTodayCmd(app),
		newGoalCmd(app),
		newStepCmd(app),
		newPlanCmd(app),
		newInsightsCmd(app),
		newIdeasCmd(app),
		newSettingsCmd(app),
		newAccountCmd(app),
		newAdminCmd(app),
		newBackupCmd(app),
		newDashboardCmd(app),
	)

	return root
}
