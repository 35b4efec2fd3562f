package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/heoga/fitness/internal/store"
)

const dateLayout = "2006-01-02"

// Exponential decay factors for the Banister impulse-response model,
// tau = 42 days (fitness) and 7 days (fatigue), one-day step.
var (
	fitnessDecay = 1.0 - math.Exp(-1.0/42.0)
	fatigueDecay = 1.0 - math.Exp(-1.0/7.0)
)

// BalancePoint is one calendar day's training stress state.
type BalancePoint struct {
	Date    time.Time
	TRIMP   float64
	Fitness float64
	Fatigue float64
	Form    float64
}

// incrementFitness applies the one-day recurrence from the previous day.
func (p *BalancePoint) incrementFitness(prev *BalancePoint) {
	p.Fitness = prev.Fitness + (p.TRIMP-prev.Fitness)*fitnessDecay
	p.Fatigue = prev.Fatigue + (p.TRIMP-prev.Fatigue)*fatigueDecay
	p.Form = p.Fitness - p.Fatigue
}

// Balance accumulates daily TRIMP over a contiguous calendar window and
// inflates it into a fitness/fatigue/form time series. Build it once,
// insert every activity, inflate once, then read Points.
type Balance struct {
	start time.Time
	end   time.Time
	data  map[string]*BalancePoint
}

// NewBalance builds a zeroed point for every day in [start, end] inclusive.
func NewBalance(start, end time.Time) *Balance {
	b := &Balance{
		start: midnight(start),
		end:   midnight(end),
		data:  make(map[string]*BalancePoint),
	}
	for d := b.start; !d.After(b.end); d = d.AddDate(0, 0, 1) {
		b.data[d.Format(dateLayout)] = &BalancePoint{Date: d}
	}
	return b
}

// Insert accumulates the activity's cached TRIMP into its day bucket.
// Activities without a TRIMP are skipped; multiple activities on one day
// add up. An activity outside the window is a caller bug, reported as an
// error rather than silently dropped.
func (b *Balance) Insert(a store.Activity) error {
	if a.TRIMP == nil {
		return nil
	}
	key := midnight(a.Time).Format(dateLayout)
	point, ok := b.data[key]
	if !ok {
		return fmt.Errorf("activity %q on %s outside balance window %s to %s",
			a.Name, key, b.start.Format(dateLayout), b.end.Format(dateLayout))
	}
	point.TRIMP += float64(*a.TRIMP)
	return nil
}

// Inflate runs the recurrence over the window in date order. The first day
// stays at the zero seed. Apply exactly once.
func (b *Balance) Inflate() {
	points := b.sorted()
	for i, point := range points {
		if i == 0 {
			continue
		}
		point.incrementFitness(points[i-1])
	}
}

// Points returns the day series sorted by date.
func (b *Balance) Points() []BalancePoint {
	sorted := b.sorted()
	points := make([]BalancePoint, len(sorted))
	for i, p := range sorted {
		points[i] = *p
	}
	return points
}

func (b *Balance) sorted() []*BalancePoint {
	points := make([]*BalancePoint, 0, len(b.data))
	for _, p := range b.data {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// midnight truncates a time to its UTC calendar day.
func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
