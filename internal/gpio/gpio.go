// Package gpio drives the status LED through pinctrl.
package gpio

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/pinctrl"
)

type Pin struct {
	Number     int
	ActiveHigh bool
}

var safeMode bool

var (
	setPin    = pinctrl.SetPin
	readLevel = pinctrl.ReadLevel
)

func SetSafeMode(enabled bool) {
	safeMode = enabled
}

func Activate(pin Pin) error {
	if safeMode {
		return nil
	}
	if pin.ActiveHigh {
		return setPin(pin.Number, "op", "pn", "dh")
	}
	return setPin(pin.Number, "op", "pn", "dl")
}

func Deactivate(pin Pin) error {
	if safeMode {
		return nil
	}
	if pin.ActiveHigh {
		return setPin(pin.Number, "op", "pn", "dl")
	}
	return setPin(pin.Number, "op", "pn", "dh")
}

func CurrentlyActive(pin Pin) (bool, error) {
	level, err := readLevel(pin.Number)
	if err != nil {
		return false, fmt.Errorf("failed to read pin level for pin %d: %w", pin.Number, err)
	}
	return pin.ActiveHigh == level, nil
}

// LED is the status indicator. Pin failures are logged and never stop the
// caller.
type LED struct {
	pin Pin
}

func NewLED(number int) *LED {
	return &LED{pin: Pin{Number: number, ActiveHigh: true}}
}

func (l *LED) On() {
	if err := Activate(l.pin); err != nil {
		log.Error().Err(err).Int("pin", l.pin.Number).Msg("Failed to switch LED on")
	}
}

func (l *LED) Off() {
	if err := Deactivate(l.pin); err != nil {
		log.Error().Err(err).Int("pin", l.pin.Number).Msg("Failed to switch LED off")
	}
}

// ValidateInitialState checks the LED is dark at startup and forces it off if
// it is not.
func (l *LED) ValidateInitialState() error {
	active, err := CurrentlyActive(l.pin)
	if err != nil {
		return err
	}
	if active {
		log.Warn().Int("pin", l.pin.Number).Msg("LED pin is active at startup, switching off")
		return Deactivate(l.pin)
	}
	return nil
}
