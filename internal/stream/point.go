// Package stream holds the canonical trackpoint sample type and the
// normalization of raw recorded point streams into time-ordered slices.
package stream

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnparsableTime is returned when a raw point's recorded timestamp
// text cannot be parsed.
var ErrUnparsableTime = errors.New("unparsable point timestamp")

// timeLayouts are the accepted textual timestamp forms, most common first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Point is a single trackpoint sample. Time is required for ordering;
// every other field is optional and nil means "not recorded", which is
// distinct from an explicit zero.
type Point struct {
	Time      time.Time `json:"-"`
	RawTime   string    `json:"time"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Distance  *float64  `json:"distance,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	HeartRate *float64  `json:"heart_rate,omitempty"`
	Cadence   *float64  `json:"cadence,omitempty"`
}

// Decompress resolves a point's timestamp. A point whose Time is already
// structured is returned unchanged, so Decompress is idempotent. Otherwise
// RawTime is parsed; failure is reported, never coerced.
func Decompress(p Point) (Point, error) {
	if !p.Time.IsZero() {
		return p, nil
	}
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, p.RawTime)
		if err == nil {
			p.Time = t
			return p, nil
		}
	}
	return p, fmt.Errorf("%w: %q", ErrUnparsableTime, p.RawTime)
}

// Points decompresses every point in a raw stream mapping and returns them
// sorted ascending by time. The sort is stable: points with equal
// timestamps keep the relative order they were visited in, which is
// unspecified across calls because map iteration order is not guaranteed.
func Points(raw map[string]Point) ([]Point, error) {
	points := make([]Point, 0, len(raw))
	for key, p := range raw {
		decompressed, err := Decompress(p)
		if err != nil {
			return nil, fmt.Errorf("decompressing point %q: %w", key, err)
		}
		points = append(points, decompressed)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points, nil
}

// WithHeartRate filters a point stream down to the samples carrying a
// usable heart rate. A recorded zero counts as "no reading".
func WithHeartRate(points []Point) []Point {
	var filtered []Point
	for _, p := range points {
		if p.HeartRate != nil && *p.HeartRate != 0 {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
