package main

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/thatsimonsguy/aq-monitor/db"
	"github.com/thatsimonsguy/aq-monitor/internal/climate"
	"github.com/thatsimonsguy/aq-monitor/internal/config"
	"github.com/thatsimonsguy/aq-monitor/internal/controller"
	"github.com/thatsimonsguy/aq-monitor/internal/datadog"
	"github.com/thatsimonsguy/aq-monitor/internal/display"
	"github.com/thatsimonsguy/aq-monitor/internal/ens160"
	"github.com/thatsimonsguy/aq-monitor/internal/gpio"
	"github.com/thatsimonsguy/aq-monitor/internal/logging"
	"github.com/thatsimonsguy/aq-monitor/internal/store"
	"github.com/thatsimonsguy/aq-monitor/internal/watchdog"
	"github.com/thatsimonsguy/aq-monitor/system/shutdown"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFile)

	log.Info().
		Str("config_file", cfg.ConfigFile).
		Str("store", cfg.StoreBackend).
		Str("watchdog", cfg.Watchdog).
		Msg("Starting air quality monitor")

	if cfg.EnableDatadog {
		datadog.InitMetrics(cfg.DDAgentAddr, cfg.DDNamespace, cfg.DDTags)
	}

	gpio.SetSafeMode(cfg.SafeMode)
	if cfg.SafeMode {
		log.Warn().Msg("SAFE MODE ENABLED: GPIO writes are disabled system-wide")
	}

	var closers []io.Closer

	var led controller.Indicator
	var ledOff shutdown.Indicator
	if cfg.LEDGPIO > 0 {
		l := gpio.NewLED(cfg.LEDGPIO)
		if err := l.ValidateInitialState(); err != nil {
			log.Warn().Err(err).Int("pin", cfg.LEDGPIO).Msg("Could not verify LED pin state")
		}
		led, ledOff = l, l
	}

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize periph host drivers")
	}
	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		log.Fatal().Err(err).Str("bus", cfg.I2CBus).Msg("Failed to open I2C bus")
	}
	closers = append(closers, bus)

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	if c, ok := st.(io.Closer); ok {
		closers = append(closers, c)
	}

	var panel controller.Display
	if *cfg.DisplayEnabled {
		p, err := display.Open(bus)
		if err != nil {
			log.Error().Err(err).Msg("Display unavailable, continuing without it")
		} else {
			panel = p
			closers = append([]io.Closer{p}, closers...)
		}
	}

	dog, err := watchdog.Open(cfg.Watchdog, cfg.WatchdogDevice, cfg.WatchdogTimeout())
	if err != nil {
		shutdown.ShutdownWithError(err, "Failed to arm watchdog", nil, ledOff, closers...)
		log.Fatal().Msg("Exiting")
	}
	if sd, ok := dog.(*watchdog.Systemd); ok {
		if err := sd.Ready(); err != nil {
			log.Warn().Err(err).Msg("Failed to notify systemd")
		}
	}

	timing := controller.DefaultTiming()
	timing.SampleInterval = cfg.SampleInterval()
	timing.FeedInterval = cfg.FeedInterval()
	timing.CalibrationSaveInterval = cfg.CalibrationSaveInterval()
	timing.CalibratedBadge = cfg.CalibratedBadge()
	timing.RecoveryDelay = cfg.RecoveryDelay()
	timing.Settle = cfg.Settle()
	timing.BootDisplay = cfg.BootDisplay()

	ctrl := controller.New(controller.Deps{
		Sensor:   ens160.New(bus, cfg.ENS160Address),
		Climate:  climate.New(bus),
		Display:  panel,
		Store:    st,
		Watchdog: dog,
		LED:      led,
	}, timing, controller.Options{FreshCalibration: cfg.FreshCalibration})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = ctrl.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		shutdown.ShutdownWithError(err, "Controller stopped", dog, ledOff, closers...)
		return
	}

	log.Info().Msg("Stopping air quality monitor")
	shutdown.Shutdown(dog, ledOff, closers...)
}

func openStore(cfg config.Config) (controller.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		return db.Open(cfg.DBPath)
	default:
		return store.New(cfg.DataDir)
	}
}
