package controller

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/display"
	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// Screen geometry of the 128x64 panel. Text rows are 10 px apart.
const (
	screenWidth = 128
	textX       = 5
	statusY     = 55
	iconX       = 96
	iconY       = 0
)

const calibratedBadge = "Calibrated"

// Frame is what one refresh of the display shows after per-field fallback.
type Frame struct {
	AQI         int
	ECO2        int
	TVOC        int
	Humidity    float64
	Temperature float64
	Label       string
	Icon        model.Icon
	Badge       bool
}

type TextLine struct {
	X, Y int
	Text string
}

// BuildFrame substitutes each "unavailable" field of current with the same field
// of lastGood. The status label follows the AQI field.
func BuildFrame(current, lastGood model.Reading, state State, now time.Time, badgeWindow time.Duration) Frame {
	f := Frame{
		AQI:         current.AQI,
		ECO2:        current.ECO2,
		TVOC:        current.TVOC,
		Humidity:    current.Humidity,
		Temperature: current.Temperature,
		Label:       current.Status,
	}

	if current.AQI == 0 {
		f.AQI = lastGood.AQI
		f.Label = lastGood.Status
	}
	if current.ECO2 <= model.ECO2Floor {
		f.ECO2 = lastGood.ECO2
	}
	if current.TVOC == 0 {
		f.TVOC = lastGood.TVOC
	}
	if current.Humidity == 0 {
		f.Humidity = lastGood.Humidity
	}
	if current.Temperature == 0 {
		f.Temperature = lastGood.Temperature
	}

	f.Icon = model.IconFor(f.AQI)
	f.Badge = state.Calibrated &&
		!state.CalibratedAt.IsZero() &&
		now.Sub(state.CalibratedAt) < badgeWindow
	return f
}

func (f Frame) Lines() []TextLine {
	lines := []TextLine{
		{textX, 5, fmt.Sprintf("AQI: %d", f.AQI)},
		{textX, 15, fmt.Sprintf("eCO2: %d", f.ECO2)},
		{textX, 25, fmt.Sprintf("TVOC: %d", f.TVOC)},
		{textX, 35, fmt.Sprintf("Humid: %.1f%%", f.Humidity)},
		{textX, 45, fmt.Sprintf("Temp: %.1fC", f.Temperature)},
	}
	if f.Badge {
		return append(lines, TextLine{textX, statusY, calibratedBadge})
	}
	return append(lines, TextLine{centered(f.Label), statusY, f.Label})
}

func centered(text string) int {
	x := (screenWidth - display.TextWidth(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}

func (c *Controller) draw(f Frame) {
	c.display.Clear()
	c.display.DrawIcon(iconX, iconY, f.Icon)
	for _, l := range f.Lines() {
		c.display.DrawText(l.X, l.Y, l.Text)
	}
	if err := c.display.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to refresh display")
	}
}
