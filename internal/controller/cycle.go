package controller

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// RunCycle takes one sample, persists or recovers as needed, refreshes the
// display and waits out the sample interval. It returns the reading the cycle
// settled on.
func (c *Controller) RunCycle(ctx context.Context) (model.Reading, error) {
	c.led.On()

	// one climate read per cycle; recovery re-reads reuse it
	humidity, temperature, err := c.climate.Read()
	if err != nil {
		// the gas sensor keeps its previous compensation
		log.Warn().Err(err).Msg("Climate sensor read failed, skipping environmental compensation")
		humidity, temperature = 0, 0
	} else if err := c.sensor.SetEnvironmentalCompensation(temperature, humidity); err != nil {
		log.Warn().Err(err).Msg("Failed to write environmental compensation")
	}

	reading := c.sample(humidity, temperature)
	log.Debug().
		Int("aqi", reading.AQI).
		Int("eco2", reading.ECO2).
		Int("tvoc", reading.TVOC).
		Float64("humidity", reading.Humidity).
		Float64("temperature", reading.Temperature).
		Str("status", reading.Status).
		Msg("Sensor sample taken")

	c.feed()
	c.ensureLastGood()

	// A restored calibration needs warm-up time, so invalid samples after a
	// restored boot are never treated as a fault.
	if !reading.Valid() && !c.state.RestoredAtBoot {
		reading, err = c.recoverSensor(ctx, reading)
		if err != nil {
			return reading, err
		}
	}

	if reading.Valid() {
		c.acceptValid(reading)
	}
	c.observe(reading)

	c.feed()
	c.draw(BuildFrame(reading, *c.lastGood, c.state, c.clock.Now(), c.timing.CalibratedBadge))

	c.cycles++
	count("cycles", 1)

	c.led.Off()
	return reading, c.idle(ctx)
}

// sample reads the three pollutant registers. A failed read counts as the
// sensor's "unavailable" value for that field.
func (c *Controller) sample(humidity, temperature float64) model.Reading {
	aqi, err := c.sensor.AirQualityIndex()
	if err != nil {
		log.Warn().Err(err).Msg("AQI read failed")
		aqi = 0
	}
	eco2, err := c.sensor.EquivalentCO2()
	if err != nil {
		log.Warn().Err(err).Msg("eCO2 read failed")
		eco2 = 0
	}
	tvoc, err := c.sensor.TotalVOC()
	if err != nil {
		log.Warn().Err(err).Msg("TVOC read failed")
		tvoc = 0
	}

	return model.Reading{
		AQI:         int(aqi),
		ECO2:        int(eco2),
		TVOC:        int(tvoc),
		Humidity:    humidity,
		Temperature: temperature,
		Status:      model.StatusLabel(int(aqi)),
	}
}

// observe feeds the settled reading to the insights tracker.
func (c *Controller) observe(r model.Reading) {
	s := c.insights.Add(c.clock.Now(), r)
	ev := log.Debug().
		Time("sampled_at", s.At).
		Int("eco2_avg_5m", s.ECO2Avg5).
		Int("eco2_avg_15m", s.ECO2Avg15).
		Str("eco2_trend", string(s.Trend))
	if s.Climate {
		ev = ev.Float64("heat_index", s.HeatIndex).
			Str("heat", string(s.Heat)).
			Int("comfort", s.Comfort)
	}
	ev.Msg("Insights updated")
}

func (c *Controller) ensureLastGood() {
	if c.lastGood != nil {
		return
	}
	r, err := c.store.LoadLastReading()
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			log.Warn().Err(err).Msg("Failed to load last readings, using defaults")
		}
		r = model.DefaultReading()
	}
	c.lastGood = &r
}

// acceptValid persists a trustworthy sample and snapshots the calibration when
// the save interval has elapsed. The reading is always written before the
// calibration blob.
func (c *Controller) acceptValid(r model.Reading) {
	if err := c.store.SaveLastReading(r); err != nil {
		log.Error().Err(err).Msg("Failed to save last readings")
		count("persistence.failures", 1, "record:reading")
	} else {
		log.Debug().Str("reading", r.String()).Msg("Last readings saved")
	}
	c.lastGood = &r

	now := c.clock.Now()
	c.state.Calibrated = true
	if c.state.CalibratedAt.IsZero() {
		c.state.CalibratedAt = now
		log.Info().Msg("Gas sensor calibration confirmed")
	}

	if !c.state.CalibrationSaved || !now.Before(c.state.NextCalibrationSave) {
		c.snapshotCalibration(now)
	}
}

// snapshotCalibration leaves the deadline untouched on failure so the next
// valid cycle retries.
func (c *Controller) snapshotCalibration(now time.Time) {
	state, err := c.sensor.CalibrationState()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read calibration state")
		return
	}
	if err := c.store.SaveCalibration(state); err != nil {
		log.Error().Err(err).Msg("Failed to save calibration state")
		count("persistence.failures", 1, "record:calibration")
		return
	}

	c.state.CalibrationSaved = true
	c.state.NextCalibrationSave = now.Add(c.timing.CalibrationSaveInterval)
	count("calibration.saves", 1)
	log.Info().
		Hex("state", state).
		Time("next_save", c.state.NextCalibrationSave).
		Msg("Calibration state saved")
}

// idle waits until the next sample is due, logging the countdown.
func (c *Controller) idle(ctx context.Context) error {
	next := c.clock.Now().Add(c.timing.SampleInterval)
	for remaining := next.Sub(c.clock.Now()); remaining > 0; remaining = next.Sub(c.clock.Now()) {
		log.Debug().
			Int("sample", c.cycles+1).
			Dur("next_in", remaining.Round(time.Second)).
			Msg("Waiting for next sample")

		step := c.timing.FeedInterval
		if remaining < step {
			step = remaining
		}
		if err := c.wait(ctx, step); err != nil {
			return err
		}
	}
	return nil
}
