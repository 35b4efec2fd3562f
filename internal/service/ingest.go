package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heoga/fitness/internal/ingest"
	"github.com/heoga/fitness/internal/store"
	"github.com/heoga/fitness/internal/stream"
	"github.com/heoga/fitness/internal/tz"
)

// ImportService turns activity files into stored, TRIMP-scored
// activities.
type ImportService struct {
	store   *store.Store
	queries *QueryService
}

// NewImportService creates an import service sharing the query
// service's store and timezone finder.
func NewImportService(s *store.Store, zones tz.Finder) *ImportService {
	return &ImportService{
		store:   s,
		queries: NewQueryService(s, zones),
	}
}

// Import parses an activity file, stores the activity and its raw
// stream, and computes its training impulse. Returns the stored
// activity.
func (s *ImportService) Import(userID, path string) (*store.Activity, error) {
	recording, err := ingest.ReadFile(path)
	if err != nil {
		return nil, err
	}

	normalized := make([]stream.Point, 0, len(recording.Points))
	for _, p := range recording.Points {
		parsed, err := stream.Decompress(p)
		if err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", path, err)
		}
		normalized = append(normalized, parsed)
	}
	summary := ingest.Summarize(normalized)

	activity := &store.Activity{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      recording.Name,
		Time:      summary.Time,
		Distance:  summary.Distance,
		Duration:  summary.Duration,
		Elevation: summary.Elevation,
		Samples:   summary.Samples,
	}
	if err := s.store.UpsertActivity(activity); err != nil {
		return nil, fmt.Errorf("storing activity: %w", err)
	}
	if err := s.store.SaveStream(activity.ID, ingest.RawStream(recording.Points)); err != nil {
		return nil, fmt.Errorf("storing stream: %w", err)
	}

	trimp, err := s.queries.ComputeTRIMP(activity.ID)
	if err != nil {
		return nil, err
	}
	if trimp != nil {
		cached := int64(*trimp)
		activity.TRIMP = &cached
	}
	return activity, nil
}
