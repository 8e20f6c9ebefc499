package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables. class_override carries no foreign key to class:
	// deleting a template intentionally leaves its overrides inspectable.
	schema := `
	CREATE TABLE IF NOT EXISTS admin (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS class (
		id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		time TEXT NOT NULL,
		title TEXT NOT NULL,
		instructor TEXT NOT NULL,
		level TEXT NOT NULL,
		spots INTEGER NOT NULL DEFAULT 0,
		class_type TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS class_override (
		id TEXT PRIMARY KEY,
		class_id TEXT NOT NULL,
		class_date TEXT NOT NULL,
		status TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		rescheduled_time TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_class_override_occurrence
		ON class_override(class_id, class_date);

	CREATE TABLE IF NOT EXISTS event (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		attendees TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS coach (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		aka TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		specialty TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		achievements TEXT NOT NULL DEFAULT '[]',
		photo_url TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trainer (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		aka TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		specialty TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		achievements TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS testimonial (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		photo_url TEXT NOT NULL DEFAULT '',
		video_url TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS gallery_item (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		section TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		url TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS endorsement (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		video_url TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS success_story (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		promotion TEXT NOT NULL,
		achievement TEXT NOT NULL DEFAULT '',
		year_graduated TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		photo_url TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tip (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		video_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_message (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS newsletter_subscription (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		subscribed_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS media_asset (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		path TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		content_type TEXT NOT NULL DEFAULT '',
		size_bytes INTEGER NOT NULL DEFAULT 0,
		uploaded_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS status_check (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
