package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Show or change administrative flags (passphrase gated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Account.VerifyAdminPass(pass) {
				return fmt.Errorf("wrong admin passphrase")
			}
			f := app.Account.Flags(context.Background())
			fmt.Printf("Premium enabled:      %v\n", f.PremiumEnabled)
			fmt.Printf("Suggestions enabled:  %v\n", f.SuggestionsEnabled)
			fmt.Printf("Experimental enabled: %v\n", f.ExperimentalEnabled)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&pass, "pass", "", "Admin passphrase")

	set := &cobra.Command{
		Use:   "set",
		Short: "Update administrative flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Account.VerifyAdminPass(pass) {
				return fmt.Errorf("wrong admin passphrase")
			}

			ctx := context.Background()
			f := app.Account.Flags(ctx)
			if cmd.Flags().Changed("premium") {
				v, _ := cmd.Flags().GetBool("premium")
				f.PremiumEnabled = v
			}
			if cmd.Flags().Changed("suggestions") {
				v, _ := cmd.Flags().GetBool("suggestions")
				f.SuggestionsEnabled = v
			}
			if cmd.Flags().Changed("experimental") {
				v, _ := cmd.Flags().GetBool("experimental")
				f.ExperimentalEnabled = v
			}

			if err := app.Account.UpdateFlags(ctx, f); err != nil {
				return err
			}
			fmt.Println("Flags updated")
			return nil
		},
	}
	set.Flags().Bool("premium", true, "Show premium surfaces")
	set.Flags().Bool("suggestions", true, "Generate suggestions")
	set.Flags().Bool("experimental", false, "Enable experimental surfaces")

	cmd.AddCommand(set)

	return cmd
}

func newBackupCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the full state as a JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Backup.Export(context.Background(), dir)
			if err != nil {
				return err
			}
			fmt.Printf("Backup written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the backup into")

	return cmd
}
