package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/heoga/fitness/internal/service"
)

func newHistoryCommand(a *app) *cobra.Command {
	var user, startFlag, endFlag string
	var chart bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the fitness/fatigue/form time series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				user = a.cfg.User
			}
			start, err := parseDateFlag(startFlag)
			if err != nil {
				return err
			}
			end, err := parseDateFlag(endFlag)
			if err != nil {
				return err
			}

			points, err := a.queries.HistoryForUser(user, start, end)
			if errors.Is(err, service.ErrNoActivities) {
				fmt.Fprintln(cmd.OutOrStdout(), "no scored activities in range")
				return nil
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTRIMP\tFITNESS\tFATIGUE\tFORM")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
					p.Date.Format("2006-01-02"), p.TRIMP, p.Fitness, p.Fatigue, p.Form)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if chart {
				form := make([]float64, len(points))
				for i, p := range points {
					form[i] = p.Form
				}
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(form,
					asciigraph.Height(10),
					asciigraph.Width(72),
					asciigraph.Caption("form (fitness - fatigue)")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user to query (defaults to the configured user)")
	cmd.Flags().StringVar(&startFlag, "start", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "window end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&chart, "chart", true, "draw the form chart")
	return cmd
}
