//go:build linux

package gpio

import (
	"errors"
	"fmt"

	"blinky/core"

	"github.com/warthog618/go-gpiocdev"
)

// LineDriver implements core.GPIODriver over the Linux GPIO character device.
type LineDriver struct {
	chip      *gpiocdev.Chip
	activeLow bool

	// Requested lines, keyed by offset
	lines map[core.GPIOPin]*gpiocdev.Line
}

// Open opens the configured chip. Lines are requested by ConfigureOutput.
func Open(cfg *Config) (*LineDriver, error) {
	if cfg == nil {
		return nil, errors.New("gpio: config cannot be nil")
	}

	chip, err := gpiocdev.NewChip(cfg.Chip)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", cfg.Chip, err)
	}

	return &LineDriver{
		chip:      chip,
		activeLow: cfg.ActiveLow,
		lines:     make(map[core.GPIOPin]*gpiocdev.Line),
	}, nil
}

// ConfigureOutput requests the line as an output, initially inactive.
func (d *LineDriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.lines[pin]; exists {
		// Already configured, this is OK
		return nil
	}

	opts := []gpiocdev.LineReqOption{gpiocdev.AsOutput(0)}
	if d.activeLow {
		opts = append(opts, gpiocdev.AsActiveLow)
	}

	line, err := d.chip.RequestLine(int(pin), opts...)
	if err != nil {
		return fmt.Errorf("request line %d: %w", pin, err)
	}

	d.lines[pin] = line
	return nil
}

// SetPin sets the logical value of the line, requesting it first if needed.
func (d *LineDriver) SetPin(pin core.GPIOPin, value bool) error {
	line, exists := d.lines[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		line = d.lines[pin]
	}

	v := 0
	if value {
		v = 1
	}
	if err := line.SetValue(v); err != nil {
		return fmt.Errorf("set line %d: %w", pin, err)
	}
	return nil
}

// Close turns the LED off, returns the lines to inputs and releases the chip.
func (d *LineDriver) Close() error {
	var errs []error

	for pin, line := range d.lines {
		if err := line.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("clear line %d: %w", pin, err))
		}
		if err := line.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure line %d: %w", pin, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close line %d: %w", pin, err))
		}
		delete(d.lines, pin)
	}
	if d.chip != nil {
		if err := d.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
		d.chip = nil
	}

	return errors.Join(errs...)
}
