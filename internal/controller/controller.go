// Package controller runs the sampling loop: calibration restore at boot, one
// climate-compensated sample per cycle, last-known-good persistence, periodic
// calibration snapshots, sensor recovery and the status display. Every wait is
// broken into watchdog-fed steps.
package controller

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/datadog"
	"github.com/thatsimonsguy/aq-monitor/internal/ens160"
	"github.com/thatsimonsguy/aq-monitor/internal/insights"
	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// SensorDriver is the capability set of the gas sensor.
type SensorDriver interface {
	AirQualityIndex() (uint8, error)
	EquivalentCO2() (int16, error)
	TotalVOC() (int16, error)
	CalibrationState() ([]byte, error)
	SetCalibrationState(state []byte) error
	SetEnvironmentalCompensation(temperature, humidity float64) error
	SetOperatingMode(mode uint8) error
	Reset() error
}

type ClimateSensor interface {
	Read() (humidity, temperature float64, err error)
}

type Display interface {
	Clear()
	DrawText(x, y int, text string)
	DrawIcon(x, y int, icon model.Icon)
	Flush() error
}

// Store persists the last-known-good reading and the calibration blob. Both
// loads return an error wrapping model.ErrNotFound when nothing was saved yet.
type Store interface {
	LoadLastReading() (model.Reading, error)
	SaveLastReading(r model.Reading) error
	LoadCalibration() ([]byte, error)
	SaveCalibration(state []byte) error
}

type Watchdog interface {
	Feed() error
}

// Indicator is the status LED.
type Indicator interface {
	On()
	Off()
}

type Deps struct {
	Sensor   SensorDriver
	Climate  ClimateSensor
	Display  Display
	Store    Store
	Watchdog Watchdog
	LED      Indicator
	Clock    Clock
}

type Options struct {
	// FreshCalibration skips restoring the stored calibration blob at boot.
	FreshCalibration bool
}

// State holds the runtime flags of the loop. It is never persisted.
type State struct {
	Calibrated     bool
	RestoredAtBoot bool
	// CalibratedAt is the first time this boot a valid sample confirmed the
	// calibration; zero until then.
	CalibratedAt        time.Time
	CalibrationSaved    bool
	NextCalibrationSave time.Time
}

var (
	count = datadog.Count
	gauge = datadog.Gauge
)

type Controller struct {
	sensor  SensorDriver
	climate ClimateSensor
	display Display
	store   Store
	led     Indicator
	clock   Clock
	sleeper *Sleeper

	timing Timing
	opts   Options

	state    State
	lastGood *model.Reading
	insights *insights.Tracker
	cycles   int
}

func New(deps Deps, timing Timing, opts Options) *Controller {
	clock := deps.Clock
	if clock == nil {
		clock = RealClock{}
	}
	led := deps.LED
	if led == nil {
		led = nopIndicator{}
	}
	display := deps.Display
	if display == nil {
		display = nopDisplay{}
	}
	return &Controller{
		sensor:   deps.Sensor,
		climate:  deps.Climate,
		display:  display,
		store:    deps.Store,
		led:      led,
		clock:    clock,
		sleeper:  NewSleeper(clock, deps.Watchdog, timing.FeedInterval),
		timing:   timing,
		opts:     opts,
		insights: insights.NewTracker(),
	}
}

// State returns a copy of the runtime flags.
func (c *Controller) State() State {
	return c.state
}

// Insights returns the eCO2 averages and trend and the heat figures as of
// the latest cycle.
func (c *Controller) Insights() insights.Snapshot {
	return c.insights.Last()
}

// LastGood returns the cached last-known-good reading, if one has been loaded.
func (c *Controller) LastGood() (model.Reading, bool) {
	if c.lastGood == nil {
		return model.Reading{}, false
	}
	return *c.lastGood, true
}

// Run starts the sensor and samples until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Start(ctx); err != nil {
		return err
	}
	for {
		if _, err := c.RunCycle(ctx); err != nil {
			return err
		}
	}
}

// Start plays the boot pattern, shows the last saved reading, restores the
// sensor calibration and switches the sensor to standard mode.
func (c *Controller) Start(ctx context.Context) error {
	log.Info().Msg("Starting air quality controller")

	if err := c.bootPattern(ctx); err != nil {
		return err
	}

	if err := c.showLastSaved(ctx); err != nil {
		return err
	}

	c.restoreCalibration()

	if err := c.wait(ctx, c.timing.PreActivate); err != nil {
		return err
	}
	if err := c.sensor.SetOperatingMode(ens160.ModeStandard); err != nil {
		log.Error().Err(err).Msg("Failed to switch gas sensor to standard mode")
	}
	if err := c.wait(ctx, c.timing.Settle); err != nil {
		return err
	}

	log.Info().
		Bool("restored_at_boot", c.state.RestoredAtBoot).
		Bool("calibrated", c.state.Calibrated).
		Msg("Gas sensor active")
	return nil
}

func (c *Controller) bootPattern(ctx context.Context) error {
	for i := 0; i < c.timing.BootBlinks; i++ {
		c.led.On()
		if err := c.wait(ctx, c.timing.BootBlink); err != nil {
			return err
		}
		c.led.Off()
		if err := c.wait(ctx, c.timing.BootBlink); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) showLastSaved(ctx context.Context) error {
	r, err := c.store.LoadLastReading()
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Info().Msg("No last readings found")
		} else {
			log.Warn().Err(err).Msg("Failed to load last readings")
		}
		return nil
	}

	c.lastGood = &r
	log.Info().Str("reading", r.String()).Msg("Last readings loaded")

	c.draw(BuildFrame(r, r, State{}, c.clock.Now(), c.timing.CalibratedBadge))
	return c.wait(ctx, c.timing.BootDisplay)
}

func (c *Controller) restoreCalibration() {
	if c.opts.FreshCalibration {
		log.Info().Msg("Starting with fresh gas sensor calibration (stored state not loaded)")
		return
	}

	state, err := c.store.LoadCalibration()
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Info().Msg("No stored calibration state, starting fresh calibration")
		} else {
			log.Warn().Err(err).Msg("Failed to load calibration state, starting fresh calibration")
		}
		return
	}

	if err := c.sensor.SetCalibrationState(state); err != nil {
		log.Warn().Err(err).Msg("Failed to restore calibration state, starting fresh calibration")
		return
	}

	c.state.RestoredAtBoot = true
	c.state.Calibrated = true
	log.Info().Hex("state", state).Msg("Gas sensor calibration restored")
}

func (c *Controller) wait(ctx context.Context, d time.Duration) error {
	return c.sleeper.Wait(ctx, d)
}

func (c *Controller) feed() {
	c.sleeper.Feed()
}

type nopIndicator struct{}

func (nopIndicator) On()  {}
func (nopIndicator) Off() {}

type nopDisplay struct{}

func (nopDisplay) Clear()                        {}
func (nopDisplay) DrawText(int, int, string)     {}
func (nopDisplay) DrawIcon(int, int, model.Icon) {}
func (nopDisplay) Flush() error                  { return nil }
