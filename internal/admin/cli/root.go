package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the devnest-admin command tree.
func (a *App) NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "devnest-admin",
		Short:         "Administrative tasks for a DevNest installation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.connect(cmd.Context(), a)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.out)
	root.SetErr(a.out)

	root.AddCommand(a.newMigrateCmd(), a.newStaffCmd(), a.newCourseCmd())
	return root
}

// Execute runs the command line in args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.NewRootCmd()
	root.SetArgs(args)
	defer a.close()
	return root.ExecuteContext(ctx)
}
