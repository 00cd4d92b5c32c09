package controller

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/ens160"
	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// recoverSensor soft-reinitialises the gas sensor and re-samples until the
// reading is valid. There is no attempt ceiling; an escalation to
// SensorDriver.Reset would hook in after a failed attempt.
func (c *Controller) recoverSensor(ctx context.Context, reading model.Reading) (model.Reading, error) {
	log.Warn().
		Str("reading", reading.String()).
		Msg("AQI, eCO2 or TVOC reading unsuccessful, entering sensor recovery")
	gauge("recovery.active", 1)
	defer gauge("recovery.active", 0)

	attempts := 0
	for !reading.Valid() {
		attempts++

		if err := c.softReinit(ctx); err != nil {
			return reading, err
		}
		if err := c.faultPulses(ctx); err != nil {
			return reading, err
		}
		if err := c.wait(ctx, c.timing.RecoveryDelay); err != nil {
			return reading, err
		}

		c.led.On()
		reading = c.sample(reading.Humidity, reading.Temperature)
		c.feed()
		c.led.Off()

		count("recovery.attempts", 1)
		log.Warn().
			Int("attempt", attempts).
			Bool("valid", reading.Valid()).
			Str("reading", reading.String()).
			Msg("Sampled gas sensor after reinit")
	}

	log.Info().Int("attempts", attempts).Msg("Gas sensor recovered")
	return reading, nil
}

func (c *Controller) softReinit(ctx context.Context) error {
	if err := c.sensor.SetOperatingMode(ens160.ModeIdle); err != nil {
		log.Error().Err(err).Msg("Failed to switch gas sensor to idle mode")
	}
	if err := c.wait(ctx, c.timing.SoftReinit); err != nil {
		return err
	}
	if err := c.sensor.SetOperatingMode(ens160.ModeStandard); err != nil {
		log.Error().Err(err).Msg("Failed to switch gas sensor to standard mode")
	}
	c.feed()
	return nil
}

// faultPulses flashes the LED quickly to show the sensor is being recovered.
func (c *Controller) faultPulses(ctx context.Context) error {
	for i := 0; i < c.timing.FaultPulses; i++ {
		c.led.On()
		if err := c.wait(ctx, c.timing.FaultPulse); err != nil {
			return err
		}
		c.led.Off()
		if err := c.wait(ctx, c.timing.FaultPulse); err != nil {
			return err
		}
	}
	return nil
}
