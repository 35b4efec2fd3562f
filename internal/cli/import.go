package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCommand(a *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Import TCX or FIT activity files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				user = a.cfg.User
			}
			for _, path := range args {
				activity, err := a.importer.Import(user, path)
				if err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
				trimp := "-"
				if activity.TRIMP != nil {
					trimp = fmt.Sprintf("%d", *activity.TRIMP)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %q (%.1f km, trimp %s)\n",
					activity.Name, activity.Distance/1000, trimp)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user to import for (defaults to the configured user)")
	return cmd
}
