// Package cli wires the configuration, store and services into the
// command surface.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heoga/fitness/internal/config"
	"github.com/heoga/fitness/internal/service"
	"github.com/heoga/fitness/internal/store"
	"github.com/heoga/fitness/internal/tz"
)

// app holds everything a command needs, built once before any command
// runs and torn down after.
type app struct {
	cfg      *config.Config
	store    *store.Store
	queries  *service.QueryService
	importer *service.ImportService
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	s, err := store.Open()
	if err != nil {
		return err
	}

	// The boundary index is optional; without it activity times render
	// in UTC.
	var zones tz.Finder = tz.Fixed("")
	if lookup, err := tz.NewLookup(); err == nil {
		zones = lookup
	}

	a.cfg = cfg
	a.store = s
	a.queries = service.NewQueryService(s, zones)
	a.importer = service.NewImportService(s, zones)
	return nil
}

func (a *app) teardown() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fitness",
		Short:         "Training stress analytics for recorded activities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.AddCommand(
		newImportCommand(a),
		newActivitiesCommand(a),
		newHistoryCommand(a),
		newTrimpCommand(a),
		newGeoJSONCommand(a),
		newProfileCommand(a),
	)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return &t, nil
}
