package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalTemplateCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var title, category, timeframe, why string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := mutate.AddGoalParams{
				Title:     title,
				Category:  category,
				Timeframe: domain.Timeframe(timeframe),
				Why:       why,
			}

			// Without flags on a terminal, fall into the wizard.
			if params.Title == "" && app.IsInteractive() {
				var err error
				params, err = runGoalWizard()
				if err != nil {
					return err
				}
			}

			goal, err := app.Goals.Add(context.Background(), params)
			if err != nil {
				return err
			}

			fmt.Printf("Created goal %s (%s, %s)\n", goal.Title, goal.Category, goal.Timeframe)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&category, "category", domain.CategoryLife, "Category (School, Health, Money, Life, ...)")
	cmd.Flags().StringVar(&timeframe, "timeframe", string(domain.TimeframeToday), "Timeframe (Today, This Week, This Month, Long Term)")
	cmd.Flags().StringVar(&why, "why", "", "Why this goal matters to you")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatGoals(app.Goals.List(context.Background())))
			return nil
		},
	}
}

func newGoalTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template [name]",
		Short: "Add a template pack (goal plus starter steps)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println("Available templates:")
				for _, name := range app.Goals.TemplateNames() {
					fmt.Printf("  %s\n", name)
				}
				return nil
			}

			goal, err := app.Goals.ApplyTemplate(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Added template %q: goal %s with starter steps\n", args[0], goal.Title)
			return nil
		},
	}
	return cmd
}
