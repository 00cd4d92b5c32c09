package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// GetLastReading retrieves the stored last-known-good reading.
func GetLastReading(db *sql.DB) (model.Reading, time.Time, error) {
	var r model.Reading
	var savedAt string
	err := db.QueryRow(`SELECT aqi, eco2, tvoc, humidity, temperature, status, saved_at FROM last_reading WHERE id = 1`).
		Scan(&r.AQI, &r.ECO2, &r.TVOC, &r.Humidity, &r.Temperature, &r.Status, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reading{}, time.Time{}, fmt.Errorf("last reading: %w", model.ErrNotFound)
	}
	if err != nil {
		return model.Reading{}, time.Time{}, fmt.Errorf("failed to get last reading: %w", err)
	}
	return r, parseSavedAt("last_reading", savedAt), nil
}

// GetCalibration retrieves the stored calibration blob.
func GetCalibration(db *sql.DB) ([]byte, time.Time, error) {
	var state []byte
	var savedAt string
	err := db.QueryRow(`SELECT state, saved_at FROM calibration WHERE id = 1`).Scan(&state, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, fmt.Errorf("calibration: %w", model.ErrNotFound)
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to get calibration: %w", err)
	}
	if len(state) != model.CalibrationSize {
		return nil, time.Time{}, fmt.Errorf("stored calibration has %d bytes, want %d", len(state), model.CalibrationSize)
	}
	return state, parseSavedAt("calibration", savedAt), nil
}

// parseSavedAt returns the zero time for an unreadable timestamp. The row
// itself is still good.
func parseSavedAt(table, savedAt string) time.Time {
	t, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		log.Warn().Err(err).Str("table", table).Str("saved_at", savedAt).Msg("Unreadable saved_at timestamp")
		return time.Time{}
	}
	return t
}

func (s *Store) LoadLastReading() (model.Reading, error) {
	r, _, err := GetLastReading(s.db)
	return r, err
}

func (s *Store) LoadCalibration() ([]byte, error) {
	state, _, err := GetCalibration(s.db)
	return state, err
}
