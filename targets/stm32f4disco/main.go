//go:build stm32f4disco

package main

import (
	"machine"

	"blinky/core"
)

var blinker *core.Blinker

// sysTickHandler is installed in the vector table by name. Its only job is to
// advance the tick counter.
//
//export SysTick_Handler
func sysTickHandler() {
	blinker.Tick()
}

func main() {
	board := core.NewHardwareBoard()

	// Must be set before SysTick is enabled in Boot
	blinker = core.NewBlinker(board.LEDPort(), core.LEDPin, core.BlinkPeriod)

	// The TinyGo runtime has already switched to the PLL, so SysTick is fed by
	// the real CPU clock rather than the reset HSI frequency.
	cfg := core.DefaultSysTickConfig()
	cfg.CoreClock = machine.CPUFrequency()

	// The register-backed port never fails
	_ = core.Boot(board, blinker, cfg)

	for {
		blinker.Step()
	}
}
