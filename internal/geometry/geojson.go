package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/heoga/fitness/internal/stream"
)

// GeoLine connects two consecutive reduced points as a LineString feature.
// The properties describe the newer point; heart_rate appears only when
// the newer point carries one.
func GeoLine(index int, newPoint, oldPoint stream.Point) *geojson.Feature {
	feature := geojson.NewFeature(orb.LineString{
		lonLat(oldPoint),
		lonLat(newPoint),
	})
	feature.Properties = geojson.Properties{
		"id":        index,
		"elevation": floatProperty(newPoint.Altitude),
		"speed":     floatProperty(newPoint.Speed),
		"distance":  floatProperty(newPoint.Distance),
		"cadence":   floatProperty(newPoint.Cadence),
	}
	if newPoint.HeartRate != nil {
		feature.Properties["heart_rate"] = *newPoint.HeartRate
	}
	return feature
}

// GeoPoint tags a single coordinate with an id, used for the start, stop
// and progress markers.
func GeoPoint(id any, point stream.Point) *geojson.Feature {
	feature := geojson.NewFeature(lonLat(point))
	feature.Properties = geojson.Properties{"id": id}
	return feature
}

// GeoJSON renders a point stream as one line feature per consecutive pair
// of reduced points, followed by "progress" and "start" markers on the
// first reduced point and a "stop" marker on the last. The caller wraps
// the features in a FeatureCollection.
func GeoJSON(points []stream.Point) []*geojson.Feature {
	reduced := ReducedPoints(points)
	if len(reduced) == 0 {
		return nil
	}

	var features []*geojson.Feature
	for i := 1; i < len(reduced); i++ {
		features = append(features, GeoLine(i-1, reduced[i], reduced[i-1]))
	}
	features = append(features,
		GeoPoint("progress", reduced[0]),
		GeoPoint("start", reduced[0]),
		GeoPoint("stop", reduced[len(reduced)-1]),
	)
	return features
}

// lonLat builds the GeoJSON (longitude, latitude) position for a sample.
// Samples without a position land at the origin; callers feeding GeoJSON
// from GPS recordings always have one.
func lonLat(p stream.Point) orb.Point {
	var lon, lat float64
	if p.Longitude != nil {
		lon = *p.Longitude
	}
	if p.Latitude != nil {
		lat = *p.Latitude
	}
	return orb.Point{lon, lat}
}

// floatProperty unwraps an optional field, keeping absence as a null
// property instead of a misleading zero.
func floatProperty(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
