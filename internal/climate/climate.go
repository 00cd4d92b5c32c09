// Package climate reads relative humidity and temperature from an AHT20/AHT21
// sitting on the same bus as the gas sensor.
package climate

import (
	"fmt"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/aht20"
)

// device is the slice of the aht20 driver the adapter needs.
type device interface {
	Read() error
	RelHumidity() float32
	Celsius() float32
}

type Sensor struct {
	dev device
}

// New resets and configures the AHT sensor on bus.
func New(bus drivers.I2C) *Sensor {
	dev := aht20.New(bus)
	dev.Reset()
	dev.Configure()
	return &Sensor{dev: &dev}
}

// Read takes one measurement and returns humidity (%) and temperature (°C).
func (s *Sensor) Read() (humidity, temperature float64, err error) {
	if err := s.dev.Read(); err != nil {
		return 0, 0, fmt.Errorf("failed to read AHT20: %w", err)
	}
	return float64(s.dev.RelHumidity()), float64(s.dev.Celsius()), nil
}
