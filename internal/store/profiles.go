package store

import (
	"database/sql"
	"errors"
)

// SaveProfile stores or updates a user's profile. Out-of-range heart-rate
// bounds are clamped into shape rather than rejected: the minimum is at
// least 1 and the maximum at least one above it.
func (s *Store) SaveProfile(p *Profile) error {
	if p.MinimumHeartRate < 1 {
		p.MinimumHeartRate = 1
	}
	if p.MaximumHeartRate < p.MinimumHeartRate+1 {
		p.MaximumHeartRate = p.MinimumHeartRate + 1
	}

	_, err := s.db.Exec(`
		INSERT INTO profiles (user_id, minimum_heart_rate, maximum_heart_rate, gender, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			minimum_heart_rate = excluded.minimum_heart_rate,
			maximum_heart_rate = excluded.maximum_heart_rate,
			gender = excluded.gender,
			updated_at = CURRENT_TIMESTAMP
	`, p.UserID, p.MinimumHeartRate, p.MaximumHeartRate, p.Gender)
	return err
}

// GetProfile retrieves a user's profile.
func (s *Store) GetProfile(userID string) (*Profile, error) {
	row := s.db.QueryRow(`
		SELECT user_id, minimum_heart_rate, maximum_heart_rate, gender
		FROM profiles
		WHERE user_id = ?
	`, userID)

	var p Profile
	err := row.Scan(&p.UserID, &p.MinimumHeartRate, &p.MaximumHeartRate, &p.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
