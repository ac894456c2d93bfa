//go:build tinygo && stm32f4

package core

import "unsafe"

// NewHardwareBoard overlays the register blocks on their physical addresses.
func NewHardwareBoard() *Board {
	return &Board{
		RCC:     (*RCCBlock)(unsafe.Pointer(uintptr(RCCBase))),
		GPIOD:   (*GPIOBlock)(unsafe.Pointer(uintptr(GPIODBase))),
		SCB:     (*SCBBlock)(unsafe.Pointer(uintptr(SCBBase))),
		SysTick: (*SysTickBlock)(unsafe.Pointer(uintptr(SysTickBase))),
		CPACR:   (*Reg32)(unsafe.Pointer(uintptr(CPACRAddr))),
	}
}
