package shutdown

import (
	"io"

	"github.com/rs/zerolog/log"

	"github.com/thatsimonsguy/aq-monitor/internal/datadog"
)

type Indicator interface {
	Off()
}

// Shutdown switches the LED off, releases the panel and disarms the watchdog.
// Any of the arguments may be nil.
func Shutdown(dog io.Closer, led Indicator, closers ...io.Closer) {
	if led != nil {
		led.Off()
		log.Info().Msg("Status LED switched off")
	}
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to release resource")
		}
	}
	if dog != nil {
		if err := dog.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to disarm watchdog")
		} else {
			log.Info().Msg("Watchdog disarmed")
		}
	}
	datadog.Close()
}

func ShutdownWithError(err error, msg string, dog io.Closer, led Indicator, closers ...io.Closer) {
	log.Error().Err(err).Msg(msg)
	Shutdown(dog, led, closers...)
}
