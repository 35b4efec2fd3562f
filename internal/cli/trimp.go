package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTrimpCommand(a *app) *cobra.Command {
	var user string
	var all bool

	cmd := &cobra.Command{
		Use:   "trimp [activity-id]...",
		Short: "Recompute and cache training impulse values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if all {
				if user == "" {
					user = a.cfg.User
				}
				activities, err := a.store.ListActivities(user)
				if err != nil {
					return err
				}
				ids = ids[:0]
				for _, activity := range activities {
					ids = append(ids, activity.ID)
				}
			}
			if len(ids) == 0 {
				return fmt.Errorf("pass activity ids or --all")
			}

			for _, id := range ids {
				trimp, err := a.queries.ComputeTRIMP(id)
				if err != nil {
					return fmt.Errorf("scoring %s: %w", id, err)
				}
				if trimp == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: no heart rate data\n", id)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: trimp %.2f\n", id, *trimp)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "recompute every stored activity")
	cmd.Flags().StringVar(&user, "user", "", "user for --all (defaults to the configured user)")
	return cmd
}
