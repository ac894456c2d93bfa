//go:build !linux

package gpio

import (
	"errors"

	"blinky/core"
)

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// LineDriver is not available on non-Linux platforms.
type LineDriver struct{}

// Open returns an error on non-Linux platforms.
func Open(cfg *Config) (*LineDriver, error) {
	return nil, errUnsupported
}

// ConfigureOutput is not implemented on non-Linux platforms.
func (d *LineDriver) ConfigureOutput(pin core.GPIOPin) error {
	return errUnsupported
}

// SetPin is not implemented on non-Linux platforms.
func (d *LineDriver) SetPin(pin core.GPIOPin, value bool) error {
	return errUnsupported
}

// Close is a no-op on non-Linux platforms.
func (d *LineDriver) Close() error {
	return nil
}
