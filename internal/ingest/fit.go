package ingest

import (
	"fmt"
	"os"

	"github.com/tormoder/fit"

	"github.com/heoga/fitness/internal/stream"
)

const semicirclesToDegrees = 180.0 / 2147483648.0

// ReadFIT parses a Garmin FIT file. FIT records carry structured
// timestamps and scaled integers, so the points come out already
// decompressed.
func ReadFIT(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading fit: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding fit: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("decoding fit: %w", err)
	}

	sport := "Activity"
	if len(activity.Sessions) > 0 {
		sport = activity.Sessions[0].Sport.String()
	}

	var points []stream.Point
	for _, r := range activity.Records {
		p := stream.Point{Time: r.Timestamp.UTC()}

		if r.PositionLat.Semicircles() != 0 && r.PositionLong.Semicircles() != 0 {
			lat := float64(r.PositionLat.Semicircles()) * semicirclesToDegrees
			lon := float64(r.PositionLong.Semicircles()) * semicirclesToDegrees
			if lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 {
				p.Latitude, p.Longitude = &lat, &lon
			}
		}
		// FIT profile scaling: altitude scale 5 offset 500, distance
		// scale 100, speed scale 1000.
		if r.Altitude != 0 {
			v := float64(r.Altitude)/5.0 - 500.0
			p.Altitude = &v
		}
		if r.Distance != 0 {
			v := float64(r.Distance) / 100.0
			p.Distance = &v
		}
		if r.Speed != 0 {
			v := float64(r.Speed) / 1000.0
			p.Speed = &v
		}
		if r.HeartRate != 0 && r.HeartRate != 255 {
			v := float64(r.HeartRate)
			p.HeartRate = &v
		}
		if r.Cadence != 0 && r.Cadence != 255 {
			v := float64(r.Cadence)
			p.Cadence = &v
		}
		points = append(points, p)
	}

	name := sport
	if len(points) > 0 {
		name = fmt.Sprintf("%s %s", sport, points[0].Time.Format("2006-01-02 15:04"))
	}
	return &Recording{Name: name, Points: points}, nil
}
