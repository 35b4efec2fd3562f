package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertActivity inserts or updates an activity
func (s *Store) UpsertActivity(a *Activity) error {
	_, err := s.db.Exec(`
		INSERT INTO activities (
			id, user_id, name, start_time, distance, duration, elevation,
			samples, trimp, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			start_time = excluded.start_time,
			distance = excluded.distance,
			duration = excluded.duration,
			elevation = excluded.elevation,
			samples = excluded.samples,
			trimp = excluded.trimp,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.UserID, a.Name, a.Time.UTC().Format(time.RFC3339),
		a.Distance, a.Duration, a.Elevation, a.Samples, a.TRIMP,
	)
	return err
}

// GetActivity retrieves an activity by ID
func (s *Store) GetActivity(id string) (*Activity, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, start_time, distance, duration, elevation, samples, trimp
		FROM activities
		WHERE id = ?
	`, id)

	return scanActivity(row)
}

// ListActivities returns a user's activities ordered by start time descending
func (s *Store) ListActivities(userID string) ([]Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, start_time, distance, duration, elevation, samples, trimp
		FROM activities
		WHERE user_id = ?
		ORDER BY start_time DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// TrimpActivities returns a user's activities carrying a cached TRIMP,
// optionally limited to a time range, ordered by start time ascending.
func (s *Store) TrimpActivities(userID string, start, end *time.Time) ([]Activity, error) {
	query := `
		SELECT id, user_id, name, start_time, distance, duration, elevation, samples, trimp
		FROM activities
		WHERE user_id = ? AND trimp IS NOT NULL`
	args := []any{userID}
	if start != nil {
		query += " AND start_time >= ?"
		args = append(args, start.UTC().Format(time.RFC3339))
	}
	if end != nil {
		query += " AND start_time <= ?"
		args = append(args, end.UTC().Format(time.RFC3339))
	}
	query += " ORDER BY start_time"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// UpdateTRIMP caches a freshly computed TRIMP on an activity. A nil value
// records "not computable".
func (s *Store) UpdateTRIMP(id string, trimp *int64) error {
	result, err := s.db.Exec(`
		UPDATE activities
		SET trimp = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, trimp, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// CountActivities returns the total number of activities for a user
func (s *Store) CountActivities(userID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM activities WHERE user_id = ?", userID).Scan(&count)
	return count, err
}

// scanActivity scans a single activity from a row
func scanActivity(row *sql.Row) (*Activity, error) {
	var a Activity
	var startTime string

	err := row.Scan(
		&a.ID, &a.UserID, &a.Name, &startTime,
		&a.Distance, &a.Duration, &a.Elevation, &a.Samples, &a.TRIMP,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Time, err = time.Parse(time.RFC3339, startTime)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time %q: %w", startTime, err)
	}

	return &a, nil
}

// scanActivities scans multiple activities from rows
func scanActivities(rows *sql.Rows) ([]Activity, error) {
	var activities []Activity

	for rows.Next() {
		var a Activity
		var startTime string

		err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &startTime,
			&a.Distance, &a.Duration, &a.Elevation, &a.Samples, &a.TRIMP,
		)
		if err != nil {
			return nil, err
		}

		a.Time, err = time.Parse(time.RFC3339, startTime)
		if err != nil {
			return nil, fmt.Errorf("parsing start_time %q: %w", startTime, err)
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}
