package cli

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
)

func newGeoJSONCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geojson <activity-id>",
		Short: "Render an activity's track as a GeoJSON FeatureCollection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := a.queries.GeoJSON(args[0])
			if err != nil {
				return err
			}

			collection := geojson.NewFeatureCollection()
			for _, f := range features {
				collection.Append(f)
			}
			data, err := collection.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encoding geojson: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	return cmd
}
