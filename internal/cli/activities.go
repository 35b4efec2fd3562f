package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heoga/fitness/internal/service"
)

func newActivitiesCommand(a *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List stored activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				user = a.cfg.User
			}
			activities, err := a.store.ListActivities(user)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no activities stored")
				return nil
			}

			unit := a.cfg.Display.DistanceUnit
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintf(w, "ID\tTIME\tNAME\tDISTANCE (%s)\tDURATION\tPACE\tTRIMP\n", unit)
			for i := range activities {
				activity := &activities[i]
				trimp := "-"
				if activity.TRIMP != nil {
					trimp = fmt.Sprintf("%d", *activity.TRIMP)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
					activity.ID,
					a.queries.LocalTime(activity),
					activity.Name,
					service.DisplayDistance(activity.Distance, unit),
					service.DurationString(activity.Duration),
					service.AveragePaceString(service.AveragePace(activity)),
					trimp,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user to list (defaults to the configured user)")
	return cmd
}
