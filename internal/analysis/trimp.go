// Package analysis computes per-activity training impulse (TRIMP) and the
// longitudinal fitness/fatigue/form model over an activity history.
package analysis

import (
	"math"
	"time"

	"github.com/heoga/fitness/internal/stream"
)

// Gender selects the TRIMP weighting exponent.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// Banister TRIMP constants.
const (
	trimpWeight    = 0.64
	maleExponent   = 1.92
	femaleExponent = 1.67
)

// Profile carries the physiological parameters the TRIMP model is
// personalized with.
type Profile struct {
	MinimumHeartRate float64
	MaximumHeartRate float64
	Gender           Gender
}

func (p Profile) exponent() float64 {
	if p.Gender == Male {
		return maleExponent
	}
	return femaleExponent
}

// HeartRateReserve returns the fraction of the reserve between min and max
// that hr represents, clamped to [0, 1].
func HeartRateReserve(hr, min, max float64) float64 {
	reserve := (hr - min) / (max - min)
	if reserve < 0 {
		return 0
	}
	if reserve > 1 {
		return 1
	}
	return reserve
}

// PercentOfHeartRateReserve is HeartRateReserve against the profile bounds.
func (p Profile) PercentOfHeartRateReserve(hr float64) float64 {
	return HeartRateReserve(hr, p.MinimumHeartRate, p.MaximumHeartRate)
}

// DeltaTRIMP is the training impulse accrued between two consecutive
// heart-rate samples: minutes * reserve * 0.64 * e^(b * reserve), where the
// reserve is taken at the average of the two heart rates. Non-negative for
// forward-ordered pairs.
func DeltaTRIMP(p Profile, t1, t0 time.Time, hr1, hr0 float64) float64 {
	minutes := t1.Sub(t0).Seconds() / 60.0
	reserve := p.PercentOfHeartRateReserve((hr1 + hr0) / 2)
	return minutes * reserve * trimpWeight * math.Exp(p.exponent()*reserve)
}

// CalculateTRIMP sums DeltaTRIMP over consecutive heart-rate-bearing sample
// pairs of a time-ordered point stream. Returns nil when no sample carries a
// heart rate ("not computable"), and zero with a single sample (no pairs).
// Persisting the result is the caller's business.
func CalculateTRIMP(points []stream.Point, p Profile) *float64 {
	withHR := stream.WithHeartRate(points)
	if len(withHR) == 0 {
		return nil
	}
	var total float64
	for i := 1; i < len(withHR); i++ {
		total += DeltaTRIMP(
			p,
			withHR[i].Time, withHR[i-1].Time,
			*withHR[i].HeartRate, *withHR[i-1].HeartRate,
		)
	}
	return &total
}
