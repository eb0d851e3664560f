package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT,
	phone         TEXT,
	address       TEXT,
	birth_date    TEXT,
	password_hash TEXT NOT NULL,
	salt          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS doctors (
	id                    TEXT PRIMARY KEY,
	name                  TEXT NOT NULL,
	specialty             TEXT NOT NULL,
	rating                REAL NOT NULL DEFAULT 0,
	reviews               INTEGER NOT NULL DEFAULT 0,
	experience            INTEGER NOT NULL DEFAULT 0,
	location              TEXT NOT NULL DEFAULT '',
	is_available          INTEGER NOT NULL DEFAULT 0,
	price                 INTEGER NOT NULL DEFAULT 0,
	schedule              TEXT NOT NULL DEFAULT '',
	image_url             TEXT NOT NULL DEFAULT '',
	description           TEXT NOT NULL DEFAULT '',
	phone_number          TEXT NOT NULL DEFAULT '',
	supports_telemedicine INTEGER NOT NULL DEFAULT 0,
	catalog_pos           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS appointments (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	doctor_id   TEXT NOT NULL,
	doctor_name TEXT NOT NULL,
	specialty   TEXT NOT NULL,
	date_iso    TEXT NOT NULL,
	time_24     TEXT NOT NULL,
	reason      TEXT NOT NULL DEFAULT '',
	price       INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_appointments_user_date ON appointments (user_id, date_iso, time_24);

CREATE TABLE IF NOT EXISTS reminders (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	appointment_id TEXT NOT NULL,
	trigger_at     TIMESTAMP NOT NULL,
	enabled        INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_reminders_user ON reminders (user_id);

CREATE TABLE IF NOT EXISTS session_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// NewDB opens the local store and applies the schema. The DSN accepts any
// go-sqlite3 path, including ":memory:" for tests.
func NewDB(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", path)
	if path == ":memory:" {
		dsn = ":memory:"
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers and keeps :memory: stores alive.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
