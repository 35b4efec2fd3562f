package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/heoga/fitness/internal/stream"
)

func floatPtr(f float64) *float64 {
	return &f
}

// hrPoints builds a stream of heart-rate samples spaced secondsApart.
func hrPoints(start time.Time, secondsApart int, rates ...float64) []stream.Point {
	points := make([]stream.Point, len(rates))
	for i, hr := range rates {
		points[i] = stream.Point{
			Time:      start.Add(time.Duration(i*secondsApart) * time.Second),
			HeartRate: floatPtr(hr),
		}
	}
	return points
}

func TestHeartRateReserve(t *testing.T) {
	tests := []struct {
		name     string
		hr       float64
		min, max float64
		want     float64
	}{
		{"mid range", 102, 50, 130, 0.4},
		{"below minimum clamps to 0", 20, 50, 130, 0},
		{"above maximum clamps to 1", 200, 50, 130, 1},
		{"at minimum", 50, 50, 130, 0},
		{"at maximum", 130, 50, 130, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeartRateReserve(tt.hr, tt.min, tt.max)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HeartRateReserve(%v, %v, %v) = %v, want %v",
					tt.hr, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestHeartRateReserveMonotonic(t *testing.T) {
	last := -1.0
	for hr := 0.0; hr <= 250; hr++ {
		got := HeartRateReserve(hr, 50, 130)
		if got < last {
			t.Fatalf("HeartRateReserve not monotonic at hr=%v: %v < %v", hr, got, last)
		}
		if got < 0 || got > 1 {
			t.Fatalf("HeartRateReserve(%v) = %v outside [0,1]", hr, got)
		}
		last = got
	}
}

func TestPercentOfHeartRateReserve(t *testing.T) {
	profile := Profile{MinimumHeartRate: 60, MaximumHeartRate: 190}
	if got := profile.PercentOfHeartRateReserve(125); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("PercentOfHeartRateReserve(125) = %v, want 0.5", got)
	}
}

func TestDeltaTRIMP(t *testing.T) {
	// avg HR 125 against bounds 100..150 gives reserve 0.5, over 3 minutes:
	// 3 * 0.5 * 0.64 * e^(1.92*0.5) = 2.507
	profile := Profile{MinimumHeartRate: 100, MaximumHeartRate: 150, Gender: Male}
	got := DeltaTRIMP(
		profile,
		time.Date(2017, 4, 3, 7, 33, 0, 0, time.UTC),
		time.Date(2017, 4, 3, 7, 30, 0, 0, time.UTC),
		120, 130,
	)
	if math.Abs(got-2.507) > 0.001 {
		t.Errorf("DeltaTRIMP() = %v, want 2.507", got)
	}

	// Female exponent is lower, so the same effort scores less.
	profile.Gender = Female
	female := DeltaTRIMP(
		profile,
		time.Date(2017, 4, 3, 7, 33, 0, 0, time.UTC),
		time.Date(2017, 4, 3, 7, 30, 0, 0, time.UTC),
		120, 130,
	)
	if female >= got {
		t.Errorf("female DeltaTRIMP = %v, want less than male %v", female, got)
	}
	if female < 0 {
		t.Errorf("DeltaTRIMP = %v, want >= 0", female)
	}
}

func TestCalculateTRIMP(t *testing.T) {
	profile := Profile{MinimumHeartRate: 60, MaximumHeartRate: 190, Gender: Male}
	start := time.Date(2017, 4, 3, 7, 30, 0, 0, time.UTC)

	t.Run("no heart rate samples", func(t *testing.T) {
		points := []stream.Point{
			{Time: start, Altitude: floatPtr(12)},
			{Time: start.Add(10 * time.Second), Speed: floatPtr(3)},
		}
		if got := CalculateTRIMP(points, profile); got != nil {
			t.Errorf("CalculateTRIMP() = %v, want nil", *got)
		}
	})

	t.Run("single sample gives zero", func(t *testing.T) {
		got := CalculateTRIMP(hrPoints(start, 10, 130), profile)
		if got == nil {
			t.Fatal("CalculateTRIMP() = nil, want 0")
		}
		if *got != 0 {
			t.Errorf("CalculateTRIMP() = %v, want 0", *got)
		}
	})

	t.Run("steady 130bpm over three 10s intervals", func(t *testing.T) {
		got := CalculateTRIMP(hrPoints(start, 10, 130, 130, 130, 130), profile)
		if got == nil {
			t.Fatal("CalculateTRIMP() = nil, want a value")
		}
		// reserve = (130-60)/130 = 0.53846 per interval, three intervals of
		// 1/6 minute: 3 * (1/6 * 0.53846 * 0.64 * e^(1.92*0.53846)) = 0.48454
		if math.Abs(*got-0.48454) > 0.0005 {
			t.Errorf("CalculateTRIMP() = %v, want ~0.48454", *got)
		}
	})

	t.Run("equals sum of deltas", func(t *testing.T) {
		points := hrPoints(start, 10, 120, 140, 150, 135)
		got := CalculateTRIMP(points, profile)
		if got == nil {
			t.Fatal("CalculateTRIMP() = nil, want a value")
		}
		var want float64
		for i := 1; i < len(points); i++ {
			want += DeltaTRIMP(profile, points[i].Time, points[i-1].Time,
				*points[i].HeartRate, *points[i-1].HeartRate)
		}
		if math.Abs(*got-want) > 1e-9 {
			t.Errorf("CalculateTRIMP() = %v, want %v", *got, want)
		}
	})

	t.Run("zero heart rate readings are dropped", func(t *testing.T) {
		points := []stream.Point{
			{Time: start, HeartRate: floatPtr(130)},
			{Time: start.Add(10 * time.Second), HeartRate: floatPtr(0)},
			{Time: start.Add(20 * time.Second), HeartRate: floatPtr(130)},
		}
		got := CalculateTRIMP(points, profile)
		if got == nil {
			t.Fatal("CalculateTRIMP() = nil, want a value")
		}
		want := CalculateTRIMP(hrPoints(start, 20, 130, 130), profile)
		if math.Abs(*got-*want) > 1e-9 {
			t.Errorf("CalculateTRIMP() = %v, want %v (zero reading skipped)", *got, *want)
		}
	})
}
