package core

// SystemInit runs once at reset: grant full access to the FPU coprocessors.
func SystemInit(cpacr *Reg32) {
	cpacr.SetBits(CPACR_FPU_FULL)
}

// SystemCoreClock returns the core clock in Hz. The clock tree is left at its
// reset configuration, so this is always the HSI frequency.
func SystemCoreClock() uint32 {
	return HSIFrequency
}
