package watchdog

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// Device is the kernel watchdog character device. It is armed as soon as it
// is opened.
type Device struct {
	f *os.File
}

func OpenDevice(path string, timeout time.Duration) (*Device, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open watchdog %s: %w", path, err)
	}

	secs := int((timeout + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	if err := unix.IoctlSetPointerInt(int(f.Fd()), unix.WDIOC_SETTIMEOUT, secs); err != nil {
		log.Warn().Err(err).Int("seconds", secs).Msg("Watchdog timeout not set, keeping device default")
	}

	log.Info().Str("device", path).Int("timeout_s", secs).Msg("Hardware watchdog armed")
	return &Device{f: f}, nil
}

func (d *Device) Feed() error {
	return unix.IoctlWatchdogKeepalive(int(d.f.Fd()))
}

// Close disarms the watchdog with the magic close character.
func (d *Device) Close() error {
	if _, err := d.f.Write([]byte("V")); err != nil {
		d.f.Close()
		return fmt.Errorf("disarm watchdog: %w", err)
	}
	return d.f.Close()
}
