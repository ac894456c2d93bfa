package core

// STM32F4 register map.
//
// Field order and widths follow RM0090 and the Cortex-M4 generic user guide.
// Offsets are load-bearing: the blocks are overlaid directly on the peripheral
// address space on target, and are checked by offset tests on host.

// Base addresses
const (
	PeriphBase      = 0x40000000
	AHB1PeriphBase  = PeriphBase + 0x00020000
	RCCBase         = PeriphBase + 0x00023800
	GPIODBase       = AHB1PeriphBase + 0x0C00
	SCSBase         = 0xE000E000
	SysTickBase     = SCSBase + 0x0010
	SCBBase         = SCSBase + 0x0D00
	CPACRAddr       = SCSBase + 0x0D88 // Coprocessor Access Control Register
	HSIFrequency    = 16000000         // Reset clock source, no PLL
	GPIOPinsPerPort = 16
)

// RCCBlock is the Reset and Clock Control block, up to AHB1ENR.
type RCCBlock struct {
	CR       Reg32
	PLLCFGR  Reg32
	CFGR     Reg32
	CIR      Reg32
	AHB1RSTR Reg32
	AHB2RSTR Reg32
	AHB3RSTR Reg32
	_        [4]byte
	APB1RSTR Reg32
	APB2RSTR Reg32
	_        [8]byte
	AHB1ENR  Reg32
}

// AHB1ENR bits
const (
	RCC_AHB1ENR_GPIOAEN = 1 << 0
	RCC_AHB1ENR_GPIOBEN = 1 << 1
	RCC_AHB1ENR_GPIOCEN = 1 << 2
	RCC_AHB1ENR_GPIODEN = 1 << 3
)

// GPIOBlock is one GPIO port. BSRR's lower half sets pins, the upper half resets
// them, so a single write changes a pin without a read-modify-write.
type GPIOBlock struct {
	MODER   Reg32 // 2 bits per pin
	OTYPER  Reg32 // 1 bit per pin
	OSPEEDR Reg32 // 2 bits per pin
	PUPDR   Reg32 // 2 bits per pin
	IDR     Reg32
	ODR     Reg32
	BSRR    Reg32
	LCKR    Reg32
	AFR     [2]Reg32
}

// SCBBlock is the System Control Block up to SHCSR.
type SCBBlock struct {
	CPUID Reg32
	ICSR  Reg32
	VTOR  Reg32
	AIRCR Reg32
	SCR   Reg32
	CCR   Reg32
	SHP   [12]Reg8 // System handler priorities, exceptions 4..15
	SHCSR Reg32
}

// SysTickBlock is the SysTick timer.
type SysTickBlock struct {
	CTRL  Reg32
	LOAD  Reg32
	VAL   Reg32
	CALIB Reg32
}

// SysTick CTRL bits
const (
	SysTick_CTRL_ENABLE    = 1 << 0
	SysTick_CTRL_TICKINT   = 1 << 1
	SysTick_CTRL_CLKSOURCE = 1 << 2 // Processor clock
	SysTick_CTRL_COUNTFLAG = 1 << 16
)

// SHP index of the SysTick handler (exception 15).
const SysTickPriorityIndex = 11

// CPACR bits granting full access to CP10 and CP11 (the FPU).
const CPACR_FPU_FULL = 0xF << 20
