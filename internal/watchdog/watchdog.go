// Package watchdog feeds whichever supervisor resets the board when the
// monitor hangs: the kernel watchdog device, systemd, or nothing.
package watchdog

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	KindHardware = "hardware"
	KindSystemd  = "systemd"
	KindNone     = "none"
)

type Dog interface {
	Feed() error
	Close() error
}

// Open arms the watchdog of the given kind. Once armed, a hardware watchdog
// resets the board unless Feed is called within timeout.
func Open(kind, device string, timeout time.Duration) (Dog, error) {
	switch kind {
	case KindHardware:
		return OpenDevice(device, timeout)
	case KindSystemd:
		return NewSystemd()
	case KindNone, "":
		log.Warn().Msg("Watchdog disabled")
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown watchdog kind %q", kind)
	}
}

type Nop struct{}

func (Nop) Feed() error  { return nil }
func (Nop) Close() error { return nil }
