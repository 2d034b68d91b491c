package cli

import "github.com/spf13/cobra"

func (a *App) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.migrator.RunMigrations(cmd.Context(), a.db); err != nil {
				return err
			}
			a.printf("migrations applied\n")
			return nil
		},
	}
}
