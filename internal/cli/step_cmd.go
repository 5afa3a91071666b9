package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/dateutil"
	"github.com/alexanderramin/compass/internal/mutate"
	"github.com/spf13/cobra"
)

func newStepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Manage steps",
	}

	cmd.AddCommand(
		newStepAddCmd(app),
		newStepDoneCmd(app),
		newStepUndoneCmd(app),
	)

	return cmd
}

func newStepAddCmd(app *App) *cobra.Command {
	var goalID, title, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new step (small & specific)",
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Steps.Add(context.Background(), mutate.AddStepParams{
				GoalID:  goalID,
				Title:   title,
				DueDate: due,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added step %s, due %s\n", step.Title, dateutil.Format(step.DueDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&goalID, "goal", "", "Goal ID (defaults to the first goal)")
	cmd.Flags().StringVar(&title, "title", "", "Step title")
	cmd.Flags().StringVar(&due, "due", "", "Due date YYYY-MM-DD (defaults to a smart estimate)")

	return cmd
}

func newStepDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <step-id>",
		Short: "Mark a step completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Steps.SetDone(context.Background(), args[0], true)
			if err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", step.Title)
			return nil
		},
	}
}

func newStepUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <step-id>",
		Short: "Mark a step not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := app.Steps.SetDone(context.Background(), args[0], false)
			if err != nil {
				return err
			}
			fmt.Printf("Reopened: %s\n", step.Title)
			return nil
		},
	}
}
