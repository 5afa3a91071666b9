package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/derive"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var notifyFlag bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's agenda, reminders, and suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			out := formatter.FormatToday(
				derive.Greeting(time.Now()),
				derive.RandomMotivation(),
				app.Today.Snapshot(ctx),
				app.Today.Agenda(ctx),
				app.Reminders.Upcoming(ctx),
				app.Insights.Suggestions(ctx),
			)
			fmt.Print(out)

			if notifyFlag {
				if _, err := app.Reminders.NotifyDueSoon(ctx); err != nil {
					fmt.Println(formatter.Warn(err.Error()))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&notifyFlag, "notify", false, "Also fire a desktop notification for due-soon steps")

	return cmd
}
