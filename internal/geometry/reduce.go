package geometry

import "github.com/heoga/fitness/internal/stream"

// targetPoints is the rough output size ReducedPoints aims for.
const targetPoints = 200

// ReductionFactor is how many raw samples are averaged per output point.
func ReductionFactor(count int) int {
	factor := count / targetPoints
	if factor < 1 {
		return 1
	}
	return factor
}

// CondensePoints averages a consecutive run of samples into one. The
// timestamp is taken from the first sample, not averaged. Each numeric
// field is the sum of its present values divided by the run length; a
// field absent from every sample stays absent rather than becoming zero.
func CondensePoints(group []stream.Point) stream.Point {
	condensed := stream.Point{
		Time:    group[0].Time,
		RawTime: group[0].RawTime,
	}
	condensed.Latitude = averageOf(group, func(p stream.Point) *float64 { return p.Latitude })
	condensed.Longitude = averageOf(group, func(p stream.Point) *float64 { return p.Longitude })
	condensed.Altitude = averageOf(group, func(p stream.Point) *float64 { return p.Altitude })
	condensed.Distance = averageOf(group, func(p stream.Point) *float64 { return p.Distance })
	condensed.Speed = averageOf(group, func(p stream.Point) *float64 { return p.Speed })
	condensed.HeartRate = averageOf(group, func(p stream.Point) *float64 { return p.HeartRate })
	condensed.Cadence = averageOf(group, func(p stream.Point) *float64 { return p.Cadence })
	return condensed
}

// averageOf divides the sum of present values by the full group size.
func averageOf(group []stream.Point, field func(stream.Point) *float64) *float64 {
	var sum float64
	seen := false
	for _, p := range group {
		if v := field(p); v != nil {
			sum += *v
			seen = true
		}
	}
	if !seen {
		return nil
	}
	avg := sum / float64(len(group))
	return &avg
}

// ReducedPoints condenses a time-ordered stream into roughly targetPoints
// averaged samples. Heart-rate-bearing samples are preferred when any
// exist, so the reduced stream stays usable for intensity rendering.
func ReducedPoints(points []stream.Point) []stream.Point {
	source := stream.WithHeartRate(points)
	if len(source) == 0 {
		source = points
	}
	factor := ReductionFactor(len(source))

	var reduced []stream.Point
	for i := 0; i < len(source); i += factor {
		end := i + factor
		if end > len(source) {
			end = len(source)
		}
		reduced = append(reduced, CondensePoints(source[i:end]))
	}
	return reduced
}
