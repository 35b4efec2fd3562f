package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heoga/fitness/internal/store"
)

func newProfileCommand(a *app) *cobra.Command {
	var user, gender string
	var minHR, maxHR float64

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update a user's heart rate profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				user = a.cfg.User
			}

			if !cmd.Flags().Changed("min") && !cmd.Flags().Changed("max") && !cmd.Flags().Changed("gender") {
				profile, err := a.store.GetProfile(user)
				if errors.Is(err, store.ErrNoProfile) {
					fmt.Fprintf(cmd.OutOrStdout(), "no profile stored for %q\n", user)
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %s: hr %g-%g, gender %s\n",
					profile.UserID, profile.MinimumHeartRate, profile.MaximumHeartRate, profile.Gender)
				return nil
			}

			profile := &store.Profile{
				UserID:           user,
				MinimumHeartRate: a.cfg.Athlete.MinimumHeartRate,
				MaximumHeartRate: a.cfg.Athlete.MaximumHeartRate,
				Gender:           a.cfg.Athlete.Gender,
			}
			if existing, err := a.store.GetProfile(user); err == nil {
				profile = existing
			}
			if cmd.Flags().Changed("min") {
				profile.MinimumHeartRate = minHR
			}
			if cmd.Flags().Changed("max") {
				profile.MaximumHeartRate = maxHR
			}
			if cmd.Flags().Changed("gender") {
				profile.Gender = gender
			}

			if err := a.store.SaveProfile(profile); err != nil {
				return err
			}
			saved, err := a.store.GetProfile(user)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved profile for %s: hr %g-%g, gender %s\n",
				saved.UserID, saved.MinimumHeartRate, saved.MaximumHeartRate, saved.Gender)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user to edit (defaults to the configured user)")
	cmd.Flags().Float64Var(&minHR, "min", 0, "minimum (resting) heart rate")
	cmd.Flags().Float64Var(&maxHR, "max", 0, "maximum heart rate")
	cmd.Flags().StringVar(&gender, "gender", "", `gender for the TRIMP exponent ("M" or "F")`)
	return cmd
}
