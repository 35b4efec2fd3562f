package service

import (
	"fmt"
	"time"

	"github.com/heoga/fitness/internal/analysis"
	"github.com/heoga/fitness/internal/store"
)

// TrimpActivities selects a user's activities carrying a cached TRIMP,
// optionally limited to [start, end], together with the calendar window
// bounding them. An explicit bound becomes the window edge; otherwise the
// window shrinks to the matching activities' own first and last days.
func (s *QueryService) TrimpActivities(userID string, start, end *time.Time) ([]store.Activity, time.Time, time.Time, error) {
	activities, err := s.store.TrimpActivities(userID, start, end)
	if err != nil {
		return nil, time.Time{}, time.Time{}, fmt.Errorf("querying activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, time.Time{}, time.Time{}, ErrNoActivities
	}

	windowStart := activities[0].Time
	if start != nil {
		windowStart = *start
	}
	windowEnd := activities[len(activities)-1].Time
	if end != nil {
		windowEnd = *end
	}
	return activities, windowStart, windowEnd, nil
}

// HistoryForUser builds the user's fitness/fatigue/form time series: one
// point per day across the bounding window, zero-load days included.
func (s *QueryService) HistoryForUser(userID string, start, end *time.Time) ([]analysis.BalancePoint, error) {
	activities, windowStart, windowEnd, err := s.TrimpActivities(userID, start, end)
	if err != nil {
		return nil, err
	}

	balance := analysis.NewBalance(windowStart, windowEnd)
	for _, a := range activities {
		if err := balance.Insert(a); err != nil {
			return nil, fmt.Errorf("bucketing activity %q: %w", a.ID, err)
		}
	}
	balance.Inflate()
	return balance.Points(), nil
}
