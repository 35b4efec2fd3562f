package store

import "time"

// Profile holds a user's physiological parameters for TRIMP scoring.
// The heart-rate bounds are self-correcting on write, see SaveProfile.
type Profile struct {
	UserID           string  `db:"user_id"`
	MinimumHeartRate float64 `db:"minimum_heart_rate"`
	MaximumHeartRate float64 `db:"maximum_heart_rate"`
	Gender           string  `db:"gender"` // "M" or "F"
}

// Activity is one recorded workout. The summary fields (distance, duration,
// elevation, samples) are derived from the point stream at ingest time.
// TRIMP caches the computed training impulse; nil means "not yet computed
// or not computable", which is distinct from zero.
type Activity struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Time      time.Time `db:"start_time"`
	Distance  float64   `db:"distance"`  // meters
	Duration  int       `db:"duration"`  // seconds
	Elevation float64   `db:"elevation"` // meters of climb
	Samples   int       `db:"samples"`
	TRIMP     *int64    `db:"trimp"`
}
