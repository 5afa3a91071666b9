package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/derive"
	"github.com/spf13/cobra"
)

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sum := app.Insights.Summary(ctx)
			premium := app.Account.Flags(ctx).PremiumEnabled
			fmt.Print(formatter.FormatInsights(sum, premium))
			fmt.Println()
			return nil
		},
	}
}

func newIdeasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ideas",
		Short: "Show idea lists for small wins and the bigger picture",
		RunE: func(cmd *cobra.Command, args []string) error {
			personal, advisory := app.Insights.PersonalIdeas(context.Background())
			fmt.Print(formatter.FormatIdeas(derive.ShortTermIdeas, derive.LongTermIdeas, personal, advisory))
			return nil
		},
	}
}
