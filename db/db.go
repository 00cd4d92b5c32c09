// Package db is the SQLite backend for the last-known-good reading and the
// calibration blob. Each record lives in a single-row table.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS last_reading (
	id INTEGER PRIMARY KEY CHECK(id=1),
	aqi INTEGER NOT NULL,
	eco2 INTEGER NOT NULL,
	tvoc INTEGER NOT NULL,
	humidity REAL NOT NULL,
	temperature REAL NOT NULL,
	status TEXT NOT NULL,
	saved_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS calibration (
	id INTEGER PRIMARY KEY CHECK(id=1),
	state BLOB NOT NULL,
	saved_at TEXT NOT NULL
);`

var now = time.Now

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and makes sure the schema
// exists. Writes are synced to disk before a commit returns.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps :memory: databases alive across calls
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(`PRAGMA synchronous = FULL`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}
	if err := ApplySchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Database opened")
	return &Store{db: conn}, nil
}

func ApplySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}
