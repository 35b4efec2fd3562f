package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/heoga/fitness/internal/store"
)

func int64Ptr(i int64) *int64 {
	return &i
}

func TestNewBalanceBuildsContiguousWindow(t *testing.T) {
	balance := NewBalance(
		time.Date(2015, 4, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2015, 4, 9, 0, 0, 0, 0, time.UTC),
	)

	points := balance.Points()
	if len(points) != 7 {
		t.Fatalf("Points() returned %d days, want 7", len(points))
	}
	for i, p := range points {
		want := time.Date(2015, 4, 3+i, 0, 0, 0, 0, time.UTC)
		if !p.Date.Equal(want) {
			t.Errorf("points[%d].Date = %v, want %v", i, p.Date, want)
		}
		if p.TRIMP != 0 || p.Fitness != 0 || p.Fatigue != 0 || p.Form != 0 {
			t.Errorf("points[%d] not zeroed: %+v", i, p)
		}
	}
}

func TestBalancePointIncrementFitness(t *testing.T) {
	prev := &BalancePoint{Fitness: 20, Fatigue: 30}
	point := &BalancePoint{TRIMP: 120}

	point.incrementFitness(prev)

	if got := math.Round(point.Fitness*10000) / 10000; got != 22.3528 {
		t.Errorf("Fitness = %v, want 22.3528", got)
	}
	if got := math.Round(point.Fatigue*10000) / 10000; got != 41.981 {
		t.Errorf("Fatigue = %v, want 41.981", got)
	}
	if got := math.Round(point.Form*10000) / 10000; got != -19.6282 {
		t.Errorf("Form = %v, want -19.6282", got)
	}
}

func TestBalanceInsert(t *testing.T) {
	start := time.Date(2017, 4, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2017, 4, 7, 0, 0, 0, 0, time.UTC)

	t.Run("accumulates into the day bucket", func(t *testing.T) {
		balance := NewBalance(start, end)
		run := store.Activity{
			Name:  "morning run",
			Time:  time.Date(2017, 4, 5, 3, 2, 1, 0, time.UTC),
			TRIMP: int64Ptr(100),
		}
		if err := balance.Insert(run); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		ride := run
		ride.Name = "evening ride"
		ride.TRIMP = int64Ptr(40)
		if err := balance.Insert(ride); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}

		var loads []float64
		for _, p := range balance.Points() {
			loads = append(loads, p.TRIMP)
		}
		want := []float64{0, 0, 140, 0, 0}
		for i := range want {
			if loads[i] != want[i] {
				t.Errorf("day %d TRIMP = %v, want %v", i, loads[i], want[i])
			}
		}
	})

	t.Run("nil TRIMP is skipped", func(t *testing.T) {
		balance := NewBalance(start, end)
		err := balance.Insert(store.Activity{
			Time: time.Date(2017, 4, 5, 3, 2, 1, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		for _, p := range balance.Points() {
			if p.TRIMP != 0 {
				t.Errorf("day %v TRIMP = %v, want 0", p.Date, p.TRIMP)
			}
		}
	})

	t.Run("out of window fails fast", func(t *testing.T) {
		balance := NewBalance(start, end)
		err := balance.Insert(store.Activity{
			Name:  "stale import",
			Time:  time.Date(2017, 4, 9, 3, 2, 1, 0, time.UTC),
			TRIMP: int64Ptr(100),
		})
		if err == nil {
			t.Fatal("Insert() outside window succeeded, want error")
		}
	})
}

func TestBalanceInflate(t *testing.T) {
	balance := NewBalance(
		time.Date(2017, 4, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 4, 7, 0, 0, 0, 0, time.UTC),
	)
	err := balance.Insert(store.Activity{
		Name:  "hills",
		Time:  time.Date(2017, 4, 5, 3, 2, 1, 0, time.UTC),
		TRIMP: int64Ptr(100),
	})
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// Fitness stays zero until the recurrence runs.
	for _, p := range balance.Points() {
		if p.Fitness != 0 {
			t.Fatalf("day %v Fitness = %v before Inflate, want 0", p.Date, p.Fitness)
		}
	}

	balance.Inflate()
	points := balance.Points()

	wantFitness := []float64{0, 0, 2.353, 2.297, 2.243}
	for i, want := range wantFitness {
		got := math.Round(points[i].Fitness*1000) / 1000
		if got != want {
			t.Errorf("day %d Fitness = %v, want %v", i, got, want)
		}
	}
	// Fatigue reacts faster than fitness on the loaded day.
	if points[2].Fatigue <= points[2].Fitness {
		t.Errorf("day 2 Fatigue = %v, want above Fitness %v",
			points[2].Fatigue, points[2].Fitness)
	}
	for _, p := range points {
		if math.Abs(p.Form-(p.Fitness-p.Fatigue)) > 1e-9 {
			t.Errorf("day %v Form = %v, want Fitness-Fatigue = %v",
				p.Date, p.Form, p.Fitness-p.Fatigue)
		}
	}
}
