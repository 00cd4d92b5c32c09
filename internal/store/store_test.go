package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := New(dir)
	require.NoError(t, err)
	return s, dir
}

func TestLastReading_RoundTrip(t *testing.T) {
	s, dir := newTestStore(t)

	_, err := s.LoadLastReading()
	assert.ErrorIs(t, err, model.ErrNotFound)

	r := model.Reading{AQI: 3, ECO2: 650, TVOC: 120, Humidity: 45.2, Temperature: 22.5, Status: "Moderate"}
	require.NoError(t, s.SaveLastReading(r))

	got, err := s.LoadLastReading()
	require.NoError(t, err)
	assert.Equal(t, r, got)

	raw, err := os.ReadFile(filepath.Join(dir, ReadingFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"aqi":3,"eco2":650,"tvoc":120,"humidity":45.2,"temperature":22.5,"status":"Moderate"}`, string(raw))

	_, err = os.Stat(filepath.Join(dir, ReadingFile+".tmp"))
	assert.True(t, os.IsNotExist(err), "temp file must not be left behind")
}

func TestLastReading_Overwrite(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SaveLastReading(model.Reading{AQI: 1, ECO2: 420, TVOC: 5, Status: "Excellent"}))
	require.NoError(t, s.SaveLastReading(model.Reading{AQI: 4, ECO2: 1500, TVOC: 800, Status: "Poor"}))

	got, err := s.LoadLastReading()
	require.NoError(t, err)
	assert.Equal(t, 4, got.AQI)
	assert.Equal(t, "Poor", got.Status)
}

func TestLastReading_Corrupt(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReadingFile), []byte("{not json"), 0o644))

	_, err := s.LoadLastReading()
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}

func TestCalibration_RoundTrip(t *testing.T) {
	s, dir := newTestStore(t)

	_, err := s.LoadCalibration()
	assert.ErrorIs(t, err, model.ErrNotFound)

	state := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60}
	require.NoError(t, s.SaveCalibration(state))

	got, err := s.LoadCalibration()
	require.NoError(t, err)
	assert.Equal(t, state, got)

	raw, err := os.ReadFile(filepath.Join(dir, CalibrationFile))
	require.NoError(t, err)
	assert.Equal(t, state, raw, "blob is stored raw")
}

func TestCalibration_WrongSize(t *testing.T) {
	s, dir := newTestStore(t)

	assert.Error(t, s.SaveCalibration([]byte{1, 2, 3}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, CalibrationFile), []byte{1, 2}, 0o644))
	_, err := s.LoadCalibration()
	assert.Error(t, err)
}

func TestClearCalibration(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.ClearCalibration(), "clearing nothing is fine")

	require.NoError(t, s.SaveCalibration([]byte{1, 2, 3, 4, 5, 6}))
	require.NoError(t, s.ClearCalibration())

	_, err := s.LoadCalibration()
	assert.ErrorIs(t, err, model.ErrNotFound)
}
