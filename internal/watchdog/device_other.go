//go:build !linux

package watchdog

import (
	"errors"
	"time"
)

type Device struct{}

func OpenDevice(path string, timeout time.Duration) (*Device, error) {
	return nil, errors.New("hardware watchdog is only supported on linux")
}

func (d *Device) Feed() error  { return nil }
func (d *Device) Close() error { return nil }
