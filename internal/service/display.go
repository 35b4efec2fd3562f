package service

import (
	"fmt"

	"github.com/heoga/fitness/internal/store"
)

// DisplayDistance converts a stored distance in meters to the given
// display unit. Unknown units pass the value through unchanged.
func DisplayDistance(meters float64, unit string) float64 {
	switch unit {
	case "km":
		return meters / 1000
	case "miles":
		return meters / 1609.344
	default:
		return meters
	}
}

// DurationString renders a duration in seconds as H:MM:SS, dropping the
// hour field when it would be zero.
func DurationString(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// AveragePace returns minutes per kilometer, or 0 for an activity with
// no recorded distance.
func AveragePace(a *store.Activity) float64 {
	if a.Distance == 0 {
		return 0
	}
	return (float64(a.Duration) / 60) / (a.Distance / 1000)
}

// AveragePaceString renders a pace in minutes per kilometer as M:SS.
func AveragePaceString(pace float64) string {
	minutes := int(pace)
	seconds := int((pace - float64(minutes)) * 60)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
