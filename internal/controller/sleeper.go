package controller

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type RealClock struct{}

func (RealClock) Now() time.Time        { return time.Now() }
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// Sleeper waits in steps no longer than the feed interval and feeds the
// watchdog after every step.
type Sleeper struct {
	clock Clock
	dog   Watchdog
	step  time.Duration
}

func NewSleeper(clock Clock, dog Watchdog, step time.Duration) *Sleeper {
	if step <= 0 {
		step = time.Second
	}
	return &Sleeper{clock: clock, dog: dog, step: step}
}

func (s *Sleeper) Feed() {
	if s.dog == nil {
		return
	}
	if err := s.dog.Feed(); err != nil {
		log.Error().Err(err).Msg("Failed to feed watchdog")
	}
}

// Wait blocks for d. Cancellation is only observed between steps.
func (s *Sleeper) Wait(ctx context.Context, d time.Duration) error {
	for d > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := s.step
		if d < step {
			step = d
		}
		s.clock.Sleep(step)
		s.Feed()
		d -= step
	}
	return nil
}
