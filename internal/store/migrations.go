package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Per-user physiological parameters
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			minimum_heart_rate REAL NOT NULL,
			maximum_heart_rate REAL NOT NULL,
			gender TEXT NOT NULL DEFAULT 'M',
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Activity summaries, derived from the point stream at ingest
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			start_time TEXT NOT NULL,
			distance REAL NOT NULL,
			duration INTEGER NOT NULL,
			elevation REAL NOT NULL,
			samples INTEGER NOT NULL,
			trimp INTEGER,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_start_time ON activities(start_time)`,

		// Raw point streams, one row per recorded sample
		`CREATE TABLE IF NOT EXISTS points (
			activity_id TEXT NOT NULL,
			point_key TEXT NOT NULL,
			time TEXT NOT NULL,
			latitude REAL,
			longitude REAL,
			altitude REAL,
			distance REAL,
			speed REAL,
			heart_rate REAL,
			cadence REAL,
			PRIMARY KEY (activity_id, point_key),
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_points_activity ON points(activity_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
