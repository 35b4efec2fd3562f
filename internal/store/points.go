package store

import (
	"fmt"
	"time"

	"github.com/heoga/fitness/internal/stream"
)

// SaveStream saves an activity's raw point stream, replacing any existing
// points for the activity. Timestamps are stored as text; parsing back to
// structured time happens in the stream package on read.
func (s *Store) SaveStream(activityID string, raw map[string]stream.Point) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM points WHERE activity_id = ?", activityID); err != nil {
		return fmt.Errorf("deleting existing points: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO points (
			activity_id, point_key, time, latitude, longitude, altitude,
			distance, speed, heart_rate, cadence
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for key, p := range raw {
		recorded := p.RawTime
		if recorded == "" && !p.Time.IsZero() {
			recorded = p.Time.UTC().Format(time.RFC3339)
		}
		_, err := stmt.Exec(
			activityID, key, recorded, p.Latitude, p.Longitude, p.Altitude,
			p.Distance, p.Speed, p.HeartRate, p.Cadence,
		)
		if err != nil {
			return fmt.Errorf("inserting point %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetStream retrieves an activity's raw point stream as a mapping from
// point key to undecompressed sample.
func (s *Store) GetStream(activityID string) (map[string]stream.Point, error) {
	rows, err := s.db.Query(`
		SELECT point_key, time, latitude, longitude, altitude,
			distance, speed, heart_rate, cadence
		FROM points
		WHERE activity_id = ?
	`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raw := make(map[string]stream.Point)
	for rows.Next() {
		var key string
		var p stream.Point
		err := rows.Scan(
			&key, &p.RawTime, &p.Latitude, &p.Longitude, &p.Altitude,
			&p.Distance, &p.Speed, &p.HeartRate, &p.Cadence,
		)
		if err != nil {
			return nil, err
		}
		raw[key] = p
	}

	return raw, rows.Err()
}

// CountPoints returns the number of stored samples for an activity
func (s *Store) CountPoints(activityID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM points WHERE activity_id = ?", activityID).Scan(&count)
	return count, err
}
