package service

import (
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/heoga/fitness/internal/analysis"
	"github.com/heoga/fitness/internal/geometry"
	"github.com/heoga/fitness/internal/store"
	"github.com/heoga/fitness/internal/stream"
)

const localTimeLayout = "02 January 2006 at 15:04"

// PointStream loads and normalizes an activity's stored point stream.
func (s *QueryService) PointStream(activityID string) ([]stream.Point, error) {
	raw, err := s.store.GetStream(activityID)
	if err != nil {
		return nil, fmt.Errorf("loading stream: %w", err)
	}
	points, err := stream.Points(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing stream: %w", err)
	}
	return points, nil
}

// ComputeTRIMP recomputes an activity's training impulse from its stream
// and caches it on the activity record. Returns nil when the stream has no
// heart-rate samples; the nil is cached too, as "not computable".
func (s *QueryService) ComputeTRIMP(activityID string) (*float64, error) {
	activity, err := s.store.GetActivity(activityID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Profile(activity.UserID)
	if err != nil {
		return nil, err
	}
	points, err := s.PointStream(activityID)
	if err != nil {
		return nil, err
	}

	trimp := analysis.CalculateTRIMP(points, profile)
	var cached *int64
	if trimp != nil {
		v := int64(*trimp)
		cached = &v
	}
	if err := s.store.UpdateTRIMP(activityID, cached); err != nil {
		return nil, fmt.Errorf("caching trimp: %w", err)
	}
	return trimp, nil
}

// GeoJSON renders an activity's reduced track as GeoJSON features, ready
// to be wrapped in a FeatureCollection.
func (s *QueryService) GeoJSON(activityID string) ([]*geojson.Feature, error) {
	points, err := s.PointStream(activityID)
	if err != nil {
		return nil, err
	}
	return geometry.GeoJSON(points), nil
}

// SVGTrack projects an activity's track into a width x height SVG box.
func (s *QueryService) SVGTrack(activityID string, width, height float64) ([]geometry.XY, error) {
	points, err := s.PointStream(activityID)
	if err != nil {
		return nil, err
	}
	return geometry.SVGPoints(points, width, height), nil
}

// LocalTime renders the activity's start in the timezone it was recorded
// in, falling back to the stored (UTC) time when the track carries no
// position or the position resolves to no zone.
func (s *QueryService) LocalTime(a *store.Activity) string {
	points, err := s.PointStream(a.ID)
	if err != nil {
		return a.Time.Format(localTimeLayout)
	}
	for _, p := range points {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		name := s.zones.TimezoneAt(*p.Latitude, *p.Longitude)
		if name == "" {
			break
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			break
		}
		return a.Time.In(loc).Format(localTimeLayout)
	}
	return a.Time.Format(localTimeLayout)
}
