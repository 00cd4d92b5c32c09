package db

import (
	"fmt"
	"io"
	"time"
)

// ShowLastReadingCLI prints the stored reading and when it was saved.
func ShowLastReadingCLI(dbPath string, w io.Writer) error {
	s, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	r, savedAt, err := GetLastReading(s.db)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (saved %s)\n", r, savedAt.Format(time.RFC3339))
	return nil
}

// ShowCalibrationCLI prints the stored calibration blob as hex.
func ShowCalibrationCLI(dbPath string, w io.Writer) error {
	s, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	state, savedAt, err := GetCalibration(s.db)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "% x (saved %s)\n", state, savedAt.Format(time.RFC3339))
	return nil
}

func ClearCalibrationCLI(dbPath string) error {
	s, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.ClearCalibration()
}
