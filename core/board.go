package core

// Board groups the register blocks the blinker touches. On target the pointers
// overlay the real peripherals; NewSimBoard backs them with ordinary memory.
type Board struct {
	RCC     *RCCBlock
	GPIOD   *GPIOBlock
	SCB     *SCBBlock
	SysTick *SysTickBlock
	CPACR   *Reg32
}

// NewSimBoard returns a board whose registers live in ordinary memory, all zero
// like the silicon after reset. Used by tests and the host simulator.
func NewSimBoard() *Board {
	return &Board{
		RCC:     new(RCCBlock),
		GPIOD:   new(GPIOBlock),
		SCB:     new(SCBBlock),
		SysTick: new(SysTickBlock),
		CPACR:   new(Reg32),
	}
}

// LEDPort returns the GPIO port driver for the board's LED port.
func (b *Board) LEDPort() *Port {
	return NewPort(b.RCC, b.GPIOD, RCC_AHB1ENR_GPIODEN)
}
