// Package geometry projects point streams into visualization payloads:
// planar SVG tracks, downsampled point runs, and GeoJSON features.
package geometry

import (
	"math"

	"github.com/heoga/fitness/internal/stream"
)

// DefaultSVGSize is the box edge used when no explicit size is requested.
const DefaultSVGSize = 30.0

// Coordinate is a geographic (latitude, longitude) pair.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// XY is a planar point in SVG space, origin top-left, north up.
type XY struct {
	X float64
	Y float64
}

// Track projects a point stream onto its coordinate pairs, skipping
// samples without a recorded position.
func Track(points []stream.Point) []Coordinate {
	var track []Coordinate
	for _, p := range points {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		track = append(track, Coordinate{Latitude: *p.Latitude, Longitude: *p.Longitude})
	}
	return track
}

// AdjustedTrack compresses each longitude by the cosine of its own
// latitude, the equirectangular correction for meridian convergence.
func AdjustedTrack(track []Coordinate) []Coordinate {
	adjusted := make([]Coordinate, len(track))
	for i, c := range track {
		adjusted[i] = Coordinate{
			Latitude:  c.Latitude,
			Longitude: c.Longitude * math.Cos(c.Latitude*math.Pi/180),
		}
	}
	return adjusted
}

// ProjectTrack maps a track into a width x height box. Y is inverted so
// north renders up. A track with no spread in one axis lands mid-box on
// that axis instead of dividing by zero.
func ProjectTrack(track []Coordinate, width, height float64) []XY {
	if len(track) == 0 {
		return nil
	}
	minLat, maxLat := track[0].Latitude, track[0].Latitude
	minLon, maxLon := track[0].Longitude, track[0].Longitude
	for _, c := range track[1:] {
		minLat = math.Min(minLat, c.Latitude)
		maxLat = math.Max(maxLat, c.Latitude)
		minLon = math.Min(minLon, c.Longitude)
		maxLon = math.Max(maxLon, c.Longitude)
	}
	latRange := maxLat - minLat
	lonRange := maxLon - minLon

	projected := make([]XY, len(track))
	for i, c := range track {
		x := width / 2
		if lonRange != 0 {
			x = width * (c.Longitude - minLon) / lonRange
		}
		y := height / 2
		if latRange != 0 {
			y = height * (1 - (c.Latitude-minLat)/latRange)
		}
		projected[i] = XY{X: x, Y: y}
	}
	return projected
}

// SVGPoints renders a point stream's adjusted track into a width x height
// SVG box.
func SVGPoints(points []stream.Point, width, height float64) []XY {
	return ProjectTrack(AdjustedTrack(Track(points)), width, height)
}
