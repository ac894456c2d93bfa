package core

// PinMode is the 2-bit MODER field.
type PinMode uint32

const (
	ModeInput PinMode = iota
	ModeOutput
	ModeAltFunc
	ModeAnalog
)

// OutputType is the 1-bit OTYPER field.
type OutputType uint32

const (
	OutputPushPull OutputType = iota
	OutputOpenDrain
)

// PinSpeed is the 2-bit OSPEEDR field (RM0090 naming).
type PinSpeed uint32

const (
	SpeedLow PinSpeed = iota
	SpeedMedium
	SpeedFast
	SpeedHigh
)

// PinPull is the 2-bit PUPDR field.
type PinPull uint32

const (
	PullNone PinPull = iota
	PullUp
	PullDown
)

// PinConfig holds the electrical configuration of a single pin.
type PinConfig struct {
	Mode  PinMode
	Type  OutputType
	Speed PinSpeed
	Pull  PinPull
}

// LEDOutput drives an LED: general-purpose push-pull output, no pull.
// Speed code 0b10 matches the board bring-up this firmware has always used.
var LEDOutput = PinConfig{
	Mode:  ModeOutput,
	Type:  OutputPushPull,
	Speed: SpeedFast,
	Pull:  PullNone,
}

// Port drives one GPIO port through its registers.
type Port struct {
	rcc        *RCCBlock
	regs       *GPIOBlock
	enableMask uint32
}

// NewPort returns a driver for regs, clock-gated by enableMask in RCC.AHB1ENR.
func NewPort(rcc *RCCBlock, regs *GPIOBlock, enableMask uint32) *Port {
	return &Port{
		rcc:        rcc,
		regs:       regs,
		enableMask: enableMask,
	}
}

// Enable gates the port clock on. Must precede any other access to the port's
// registers; writes to an unclocked port are ignored by the hardware.
func (p *Port) Enable() {
	p.rcc.AHB1ENR.SetBits(p.enableMask)
}

// Configure rewrites the mode, type, speed and pull fields of pin. Each field is
// a masked read-modify-write; other pins' bits are preserved.
// pin must be 0-15.
func (p *Port) Configure(pin GPIOPin, cfg PinConfig) {
	pos2 := uint8(pin) * 2
	p.regs.MODER.ReplaceBits(uint32(cfg.Mode), 0x3, pos2)
	p.regs.OTYPER.ReplaceBits(uint32(cfg.Type), 0x1, uint8(pin))
	p.regs.OSPEEDR.ReplaceBits(uint32(cfg.Speed), 0x3, pos2)
	p.regs.PUPDR.ReplaceBits(uint32(cfg.Pull), 0x3, pos2)
}

// ConfigureOutput enables the port and configures pin for LED output.
func (p *Port) ConfigureOutput(pin GPIOPin) error {
	p.Enable()
	p.Configure(pin, LEDOutput)
	return nil
}

// Set drives pin high with a single BSRR write.
func (p *Port) Set(pin GPIOPin) {
	p.regs.BSRR.Set(1 << pin)
}

// Clear drives pin low with a single BSRR write.
func (p *Port) Clear(pin GPIOPin) {
	p.regs.BSRR.Set(1 << (pin + GPIOPinsPerPort))
}

// SetPin drives pin high (true) or low (false).
func (p *Port) SetPin(pin GPIOPin, value bool) error {
	if value {
		p.Set(pin)
	} else {
		p.Clear(pin)
	}
	return nil
}
