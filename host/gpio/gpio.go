// Package gpio provides host LED backends for the blinker.
// The Linux implementation drives a line of a GPIO character device, with the
// pin number used as the line offset.
package gpio

// DefaultChip is the gpiochip used when none is configured.
const DefaultChip = "gpiochip0"

// Config selects the chip and the electrical polarity of the LED.
type Config struct {
	// Chip name or path (e.g. "gpiochip0", "/dev/gpiochip0")
	Chip string

	// ActiveLow inverts the line so that LED on drives it low
	ActiveLow bool
}

// DefaultConfig returns a configuration for gpiochip0, active high.
func DefaultConfig() *Config {
	return &Config{
		Chip: DefaultChip,
	}
}
