package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// StartTransaction starts a new database transaction.
func StartTransaction(db *sql.DB) (*sql.Tx, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	return tx, nil
}

// CommitTransaction commits the given transaction.
func CommitTransaction(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RollbackTransaction rolls back the given transaction.
func RollbackTransaction(tx *sql.Tx) {
	tx.Rollback()
}

func SaveLastReadingWithTx(tx *sql.Tx, r model.Reading, at time.Time) error {
	_, err := tx.Exec(`INSERT OR REPLACE INTO last_reading (id, aqi, eco2, tvoc, humidity, temperature, status, saved_at) VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		r.AQI, r.ECO2, r.TVOC, r.Humidity, r.Temperature, r.Status, at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save last reading: %w", err)
	}
	return nil
}

func SaveCalibrationWithTx(tx *sql.Tx, state []byte, at time.Time) error {
	if len(state) != model.CalibrationSize {
		return fmt.Errorf("calibration state has %d bytes, want %d", len(state), model.CalibrationSize)
	}
	_, err := tx.Exec(`INSERT OR REPLACE INTO calibration (id, state, saved_at) VALUES (1, ?, ?)`, state, at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save calibration: %w", err)
	}
	return nil
}

func ClearCalibrationWithTx(tx *sql.Tx) error {
	if _, err := tx.Exec(`DELETE FROM calibration WHERE id = 1`); err != nil {
		return fmt.Errorf("clear calibration: %w", err)
	}
	return nil
}

// withTx runs fn in its own transaction and commits it.
func (s *Store) withTx(fn func(*sql.Tx) error) error {
	tx, err := StartTransaction(s.db)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		RollbackTransaction(tx)
		return err
	}
	return CommitTransaction(tx)
}

func (s *Store) SaveLastReading(r model.Reading) error {
	return s.withTx(func(tx *sql.Tx) error {
		return SaveLastReadingWithTx(tx, r, now())
	})
}

func (s *Store) SaveCalibration(state []byte) error {
	return s.withTx(func(tx *sql.Tx) error {
		return SaveCalibrationWithTx(tx, state, now())
	})
}

func (s *Store) ClearCalibration() error {
	return s.withTx(ClearCalibrationWithTx)
}
