package model

import (
	"errors"
	"fmt"
)

// Reading is one sample of the air-quality and climate sensors.
type Reading struct {
	AQI         int     `json:"aqi"`
	ECO2        int     `json:"eco2"`
	TVOC        int     `json:"tvoc"`
	Humidity    float64 `json:"humidity"`
	Temperature float64 `json:"temperature"`
	Status      string  `json:"status"`
}

// ECO2Floor is the eCO2 value the sensor reports while it has no usable output.
const ECO2Floor = 400

// Valid reports whether the sample can be trusted. eCO2 must be strictly above the
// sensor floor, not merely non-zero.
func (r Reading) Valid() bool {
	return r.AQI != 0 && r.ECO2 > ECO2Floor && r.TVOC != 0
}

func (r Reading) String() string {
	return fmt.Sprintf("aqi=%d eco2=%d tvoc=%d humidity=%.1f temperature=%.1f status=%q",
		r.AQI, r.ECO2, r.TVOC, r.Humidity, r.Temperature, r.Status)
}

// DefaultReading is used when no last-known-good record could be loaded.
func DefaultReading() Reading {
	return Reading{
		AQI:    0,
		ECO2:   ECO2Floor,
		TVOC:   0,
		Status: "-",
	}
}

// StatusLabel maps an AQI value to its display label.
func StatusLabel(aqi int) string {
	switch aqi {
	case 1:
		return "Excellent"
	case 2:
		return "Good"
	case 3:
		return "Moderate"
	case 4:
		return "Poor"
	default:
		return "Unhealthy"
	}
}

type Icon string

const (
	IconExcellent Icon = "excellent"
	IconGood      Icon = "good"
	IconModerate  Icon = "moderate"
	IconPoor      Icon = "poor"
	IconUnhealthy Icon = "unhealthy"
)

// IconFor maps an AQI value to a face icon; anything outside 1..5 is unhealthy.
func IconFor(aqi int) Icon {
	switch aqi {
	case 1:
		return IconExcellent
	case 2:
		return IconGood
	case 3:
		return IconModerate
	case 4:
		return IconPoor
	default:
		return IconUnhealthy
	}
}

// CalibrationSize is the length of the gas sensor's opaque baseline state.
const CalibrationSize = 6

// ErrNotFound is wrapped by persistence loads when no record has been saved.
var ErrNotFound = errors.New("record not found")
