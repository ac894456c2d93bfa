package core

// GPIOPin identifies a pin within a GPIO port (0-15 on STM32F4).
type GPIOPin uint8

// GPIODriver is the output interface the blinker drives.
// The register-backed Port never fails; host backends may.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a push-pull digital output
	ConfigureOutput(pin GPIOPin) error

	// SetPin drives the pin high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error
}
