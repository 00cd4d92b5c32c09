package watchdog

import (
	"errors"
	"fmt"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/rs/zerolog/log"
)

var (
	notify          = daemon.SdNotify
	watchdogEnabled = daemon.SdWatchdogEnabled
)

// Systemd pings the service manager's watchdog (WatchdogSec= in the unit).
type Systemd struct{}

func NewSystemd() (*Systemd, error) {
	interval, err := watchdogEnabled(false)
	if err != nil {
		return nil, fmt.Errorf("query systemd watchdog: %w", err)
	}
	if interval == 0 {
		return nil, errors.New("systemd watchdog is not enabled for this service")
	}
	log.Info().Dur("interval", interval).Msg("Systemd watchdog armed")
	return &Systemd{}, nil
}

// Ready tells systemd start-up is complete.
func (s *Systemd) Ready() error {
	return s.send(daemon.SdNotifyReady)
}

func (s *Systemd) Feed() error {
	return s.send(daemon.SdNotifyWatchdog)
}

func (s *Systemd) Close() error {
	return s.send(daemon.SdNotifyStopping)
}

func (s *Systemd) send(state string) error {
	sent, err := notify(false, state)
	if err != nil {
		return err
	}
	if !sent {
		return errors.New("systemd notification socket not available")
	}
	return nil
}
