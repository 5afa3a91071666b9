package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Reshape the today list",
	}

	cmd.AddCommand(
		newPlanPrioritizeCmd(app),
		newPlanShrinkCmd(app),
		newPlanResetCmd(app),
	)

	return cmd
}

func newPlanPrioritizeCmd(app *App) *cobra.Command {
	var energy string
	var limit int

	cmd := &cobra.Command{
		Use:   "prioritize",
		Short: "Rebuild the today list from due dates and energy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if energy != "" && !domain.ValidEnergyLevels[energy] {
				return fmt.Errorf("invalid energy level %q (low, medium, high)", energy)
			}

			selected, err := app.Today.Prioritize(context.Background(), domain.EnergyLevel(energy), limit)
			if err != nil {
				return err
			}
			fmt.Printf("Put %d steps on today's list\n", selected)
			return nil
		},
	}

	cmd.Flags().StringVar(&energy, "energy", string(domain.EnergyMedium), "Energy level: low, medium, high")
	cmd.Flags().IntVar(&limit, "limit", 0, "Override the energy-derived step budget")

	return cmd
}

func newPlanShrinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shrink",
		Short: "Overwhelmed? Cut today down to the 3 most urgent steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			kept, err := app.Today.Shrink(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Kept %d steps. The rest can wait.\n", kept)
			return nil
		},
	}
}

func newPlanResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Weekly reset: drop floating steps, push dated ones a week out",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Today.WeeklyReset(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Dropped %d floating steps, postponed %d dated steps by a week\n",
				res.Dropped, res.Postponed)
			return nil
		},
	}
}
