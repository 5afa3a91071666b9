package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change reminder settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Account.Settings(context.Background())
			fmt.Printf("Reminders enabled: %v\nRemind days before: %d\n",
				s.RemindersEnabled, s.RemindDaysBefore)
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var remindersEnabled bool
	var remindDaysBefore int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update reminder settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := app.Account.Settings(ctx)

			if cmd.Flags().Changed("reminders") {
				s.RemindersEnabled = remindersEnabled
			}
			if cmd.Flags().Changed("days-before") {
				s.RemindDaysBefore = remindDaysBefore
			}

			if err := app.Account.UpdateSettings(ctx, s); err != nil {
				return err
			}
			fmt.Println("Settings updated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&remindersEnabled, "reminders", true, "Enable reminders")
	cmd.Flags().IntVar(&remindDaysBefore, "days-before", 1, "Remind this many days before a due date")

	return cmd
}

func newAccountCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show or toggle personalization (account mode)",
		RunE: func(cmd *cobra.Command, args []string) error {
			acct := app.Account.Current(context.Background())
			if acct.HasAccount {
				who := acct.Name
				if who == "" {
					who = "you"
				}
				fmt.Printf("Personalization on for %s\n", who)
			} else {
				fmt.Println("Guest mode – no learning, just gentle structure.")
			}
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle account mode on or off",
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := app.Account.Toggle(context.Background(), name, email)
			if err != nil {
				return err
			}
			if on {
				fmt.Println("Account mode on. Compass will slowly learn your patterns (still on this device only).")
			} else {
				fmt.Println("Account mode off. No more learning – just basic suggestions.")
			}
			return nil
		},
	}
	toggle.Flags().StringVar(&name, "name", "", "Display name")
	toggle.Flags().StringVar(&email, "email", "", "Email (display only, never transmitted)")

	cmd.AddCommand(toggle)

	return cmd
}
