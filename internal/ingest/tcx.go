package ingest

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/heoga/fitness/internal/stream"
)

type tcxFile struct {
	Activities []tcxActivity `xml:"Activities>Activity"`
}

type tcxActivity struct {
	Sport string   `xml:"Sport,attr"`
	Laps  []tcxLap `xml:"Lap"`
}

type tcxLap struct {
	Trackpoints []tcxTrackpoint `xml:"Track>Trackpoint"`
}

type tcxTrackpoint struct {
	Time      string       `xml:"Time"`
	Position  *tcxPosition `xml:"Position"`
	Altitude  *float64     `xml:"AltitudeMeters"`
	Distance  *float64     `xml:"DistanceMeters"`
	HeartRate *tcxValue    `xml:"HeartRateBpm"`
	Cadence   *float64     `xml:"Cadence"`
	Speed     *float64     `xml:"Extensions>TPX>Speed"`
}

type tcxPosition struct {
	Latitude  float64 `xml:"LatitudeDegrees"`
	Longitude float64 `xml:"LongitudeDegrees"`
}

type tcxValue struct {
	Value float64 `xml:"Value"`
}

// ReadTCX parses a Garmin Training Center XML file. Timestamps stay in
// their recorded text form; normalization happens downstream.
func ReadTCX(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tcx: %w", err)
	}

	var file tcxFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing tcx: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, fmt.Errorf("parsing tcx: no activities in %s", path)
	}
	activity := file.Activities[0]

	var points []stream.Point
	for _, lap := range activity.Laps {
		for _, tp := range lap.Trackpoints {
			p := stream.Point{
				RawTime:  tp.Time,
				Altitude: tp.Altitude,
				Distance: tp.Distance,
				Cadence:  tp.Cadence,
				Speed:    tp.Speed,
			}
			if tp.Position != nil {
				lat, lon := tp.Position.Latitude, tp.Position.Longitude
				p.Latitude, p.Longitude = &lat, &lon
			}
			if tp.HeartRate != nil {
				hr := tp.HeartRate.Value
				p.HeartRate = &hr
			}
			points = append(points, p)
		}
	}

	return &Recording{
		Name:   recordingName(activity.Sport, points),
		Points: points,
	}, nil
}

// recordingName builds a display name from the sport and the first
// parseable timestamp, e.g. "Running 2017-05-04 15:04".
func recordingName(sport string, points []stream.Point) string {
	if sport == "" {
		sport = "Activity"
	}
	for _, p := range points {
		parsed, err := stream.Decompress(p)
		if err != nil {
			continue
		}
		return fmt.Sprintf("%s %s", sport, parsed.Time.Format("2006-01-02 15:04"))
	}
	return sport
}
