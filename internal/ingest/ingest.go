// Package ingest parses activity files (TCX, FIT) into raw point
// streams and summarizes them into activity records.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/heoga/fitness/internal/stream"
)

// ErrUnsupportedFormat is returned for files that are neither TCX nor FIT.
var ErrUnsupportedFormat = errors.New("unsupported activity file format")

// Recording is a parsed activity file: a display name and the ordered
// point samples it contained.
type Recording struct {
	Name   string
	Points []stream.Point
}

// Summary carries the per-activity aggregates derived from a recording's
// points.
type Summary struct {
	Time      time.Time
	Distance  float64
	Duration  int
	Elevation float64
	Samples   int
}

// ReadFile parses an activity file by extension.
func ReadFile(path string) (*Recording, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tcx":
		return ReadTCX(path)
	case ".fit":
		return ReadFIT(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Summarize derives the activity aggregates from normalized points:
// start time, final recorded distance, elapsed duration, climbed
// elevation and sample count.
func Summarize(points []stream.Point) Summary {
	s := Summary{Samples: len(points)}
	if len(points) == 0 {
		return s
	}

	s.Time = points[0].Time
	s.Duration = int(points[len(points)-1].Time.Sub(points[0].Time).Seconds())

	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Distance != nil {
			s.Distance = *points[i].Distance
			break
		}
	}

	var last *float64
	for _, p := range points {
		if p.Altitude == nil {
			continue
		}
		if last != nil && *p.Altitude > *last {
			s.Elevation += *p.Altitude - *last
		}
		last = p.Altitude
	}
	return s
}

// RawStream keys the points for storage. Keys preserve the recorded
// order under a lexicographic sort, so normalization later reproduces
// the same sequence even for unparsable timestamps.
func RawStream(points []stream.Point) map[string]stream.Point {
	raw := make(map[string]stream.Point, len(points))
	for i, p := range points {
		raw[fmt.Sprintf("point-%05d", i)] = p
	}
	return raw
}
