// Package service ties the store to the analytics engine: it normalizes
// stored streams, computes and caches TRIMP, and answers history and
// visualization queries.
package service

import (
	"errors"

	"github.com/heoga/fitness/internal/analysis"
	"github.com/heoga/fitness/internal/store"
	"github.com/heoga/fitness/internal/tz"
)

// ErrNoActivities is returned when a history query matches nothing.
var ErrNoActivities = errors.New("no activities with a training impulse in range")

// Fallback profile bounds for users who haven't stored one yet.
const (
	defaultMinimumHeartRate = 60
	defaultMaximumHeartRate = 190
)

// QueryService answers analytics queries over stored activities.
type QueryService struct {
	store *store.Store
	zones tz.Finder
}

// NewQueryService creates a query service. The timezone finder is only
// used for local-time display and may be a tz.Fixed fallback.
func NewQueryService(s *store.Store, zones tz.Finder) *QueryService {
	return &QueryService{store: s, zones: zones}
}

// Profile returns the user's TRIMP parameters, falling back to defaults
// when none are stored.
func (s *QueryService) Profile(userID string) (analysis.Profile, error) {
	stored, err := s.store.GetProfile(userID)
	if errors.Is(err, store.ErrNoProfile) {
		return analysis.Profile{
			MinimumHeartRate: defaultMinimumHeartRate,
			MaximumHeartRate: defaultMaximumHeartRate,
			Gender:           analysis.Male,
		}, nil
	}
	if err != nil {
		return analysis.Profile{}, err
	}
	return analysis.Profile{
		MinimumHeartRate: stored.MinimumHeartRate,
		MaximumHeartRate: stored.MaximumHeartRate,
		Gender:           analysis.Gender(stored.Gender),
	}, nil
}
