// Package ens160 drives the ScioSense ENS160 metal-oxide gas sensor over any bus
// implementing tinygo.org/x/drivers.I2C (periph.io buses satisfy it directly).
package ens160

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
)

// ErrInvalidArgument is returned for an unknown operating mode or a calibration
// state of the wrong length.
var ErrInvalidArgument = errors.New("ens160: invalid argument")

type Device struct {
	bus     drivers.I2C
	Address uint16

	sleep func(time.Duration)
}

func New(bus drivers.I2C, address uint16) *Device {
	if address == 0 {
		address = DefaultAddress
	}
	return &Device{
		bus:     bus,
		Address: address,
		sleep:   time.Sleep,
	}
}

func (d *Device) readRegister(reg uint8, buf []byte) error {
	return d.bus.Tx(d.Address, []byte{reg}, buf)
}

func (d *Device) writeRegister(reg uint8, data ...byte) error {
	w := make([]byte, 0, len(data)+1)
	w = append(w, reg)
	w = append(w, data...)
	return d.bus.Tx(d.Address, w, nil)
}

// OperatingMode reads back the current operating mode.
func (d *Device) OperatingMode() (uint8, error) {
	buf := make([]byte, 1)
	if err := d.readRegister(regOperatingMode, buf); err != nil {
		return 0, errors.Wrap(err, "could not read operating mode")
	}
	return buf[0], nil
}

func (d *Device) SetOperatingMode(mode uint8) error {
	switch mode {
	case ModeDeepSleep, ModeIdle, ModeStandard, ModeReset:
	default:
		return errors.Wrapf(ErrInvalidArgument, "operating mode %#x", mode)
	}
	if err := d.writeRegister(regOperatingMode, mode); err != nil {
		return errors.Wrapf(err, "could not set operating mode %#x", mode)
	}
	return nil
}

// AirQualityIndex returns the UBA air quality index, 1 (excellent) to 5 (unhealthy).
func (d *Device) AirQualityIndex() (uint8, error) {
	buf := make([]byte, 1)
	if err := d.readRegister(regAQI, buf); err != nil {
		return 0, errors.Wrap(err, "could not read AQI")
	}
	return buf[0], nil
}

// EquivalentCO2 returns the calculated eCO2 concentration in ppm.
func (d *Device) EquivalentCO2() (int16, error) {
	v, err := d.readPair(regECO2)
	return v, errors.Wrap(err, "could not read eCO2")
}

// TotalVOC returns the calculated TVOC concentration in ppb.
func (d *Device) TotalVOC() (int16, error) {
	v, err := d.readPair(regTVOC)
	return v, errors.Wrap(err, "could not read TVOC")
}

func (d *Device) readPair(reg uint8) (int16, error) {
	buf := make([]byte, 2)
	if err := d.readRegister(reg, buf); err != nil {
		return 0, err
	}
	return decodePair(buf[0], buf[1]), nil
}

// decodePair turns a little-endian register pair into a two's-complement value.
func decodePair(lo, hi byte) int16 {
	return int16(uint16(lo) | uint16(hi)<<8)
}

// CalibrationState returns the sensor's opaque baseline state so it can be
// restored after a power cycle.
func (d *Device) CalibrationState() ([]byte, error) {
	buf := make([]byte, StateSize)
	if err := d.readRegister(regState, buf); err != nil {
		return nil, errors.Wrap(err, "could not read calibration state")
	}
	return buf, nil
}

func (d *Device) SetCalibrationState(state []byte) error {
	if len(state) != StateSize {
		return errors.Wrapf(ErrInvalidArgument, "calibration state must be %d bytes, got %d", StateSize, len(state))
	}
	if err := d.writeRegister(regState, state...); err != nil {
		return errors.Wrap(err, "could not write calibration state")
	}
	return nil
}

// SetEnvironmentalCompensation feeds ambient temperature (°C) and relative
// humidity (%) to the sensor's compensation algorithm. Both fields go out in one
// transaction, humidity first.
func (d *Device) SetEnvironmentalCompensation(temperature, humidity float64) error {
	if err := d.writeRegister(regEnvIn, encodeCompensation(temperature, humidity)...); err != nil {
		return errors.Wrap(err, "could not write compensation data")
	}
	return nil
}

func encodeCompensation(temperature, humidity float64) []byte {
	t := clampUint16(math.Round((temperature + 273.15) * 64))
	h := clampUint16(math.Round(humidity * 512))
	return []byte{byte(h), byte(h >> 8), byte(t), byte(t >> 8)}
}

func clampUint16(v float64) uint16 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}

// Reset runs the full reset sequence and leaves the sensor in standard mode.
// It blocks for a little over two seconds.
func (d *Device) Reset() error {
	if err := d.SetOperatingMode(ModeReset); err != nil {
		return err
	}
	d.sleep(time.Second)

	if err := d.SetOperatingMode(ModeIdle); err != nil {
		return err
	}
	d.sleep(250 * time.Millisecond)

	if err := d.writeRegister(regCommand, cmdNOP); err != nil {
		return errors.Wrap(err, "could not clear command register")
	}
	d.sleep(150 * time.Millisecond)
	if err := d.writeRegister(regCommand, cmdClrGPR); err != nil {
		return errors.Wrap(err, "could not clear general purpose registers")
	}
	d.sleep(350 * time.Millisecond)

	if err := d.SetOperatingMode(ModeStandard); err != nil {
		return err
	}
	d.sleep(500 * time.Millisecond)
	return nil
}
