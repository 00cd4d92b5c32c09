// Package store keeps the last-known-good reading and the gas sensor
// calibration blob as two files in a data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

const (
	ReadingFile     = "last_readings.json"
	CalibrationFile = "ens160_state.dat"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) LoadLastReading() (model.Reading, error) {
	file, err := os.Open(s.path(ReadingFile))
	if err != nil {
		if os.IsNotExist(err) {
			return model.Reading{}, fmt.Errorf("last reading: %w", model.ErrNotFound)
		}
		return model.Reading{}, err
	}
	defer file.Close()

	var r model.Reading
	if err := json.NewDecoder(file).Decode(&r); err != nil {
		return model.Reading{}, fmt.Errorf("decode %s: %w", ReadingFile, err)
	}
	return r, nil
}

func (s *Store) SaveLastReading(r model.Reading) error {
	return s.write(ReadingFile, func(f *os.File) error {
		return json.NewEncoder(f).Encode(r)
	})
}

func (s *Store) LoadCalibration() ([]byte, error) {
	state, err := os.ReadFile(s.path(CalibrationFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("calibration: %w", model.ErrNotFound)
		}
		return nil, err
	}
	if len(state) != model.CalibrationSize {
		return nil, fmt.Errorf("calibration file has %d bytes, want %d", len(state), model.CalibrationSize)
	}
	return state, nil
}

func (s *Store) SaveCalibration(state []byte) error {
	if len(state) != model.CalibrationSize {
		return fmt.Errorf("calibration state has %d bytes, want %d", len(state), model.CalibrationSize)
	}
	return s.write(CalibrationFile, func(f *os.File) error {
		_, err := f.Write(state)
		return err
	})
}

// ClearCalibration removes the stored blob so the next boot calibrates from
// scratch. Clearing an absent blob is not an error.
func (s *Store) ClearCalibration() error {
	err := os.Remove(s.path(CalibrationFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// write replaces name atomically: the new content is synced to a temp file
// before it is renamed over the old one.
func (s *Store) write(name string, encode func(*os.File) error) error {
	target := s.path(name)
	tmpPath := target + ".tmp"

	file, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	if err := encode(file); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, target)
}
