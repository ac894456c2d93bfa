package core

// TickRate is the SysTick interrupt rate in Hz (1 ms ticks).
const TickRate = 1000

// LowestPriority is the SHP value for the lowest priority with 4 implemented
// priority bits (level 15).
const LowestPriority = 0xF0

// SysTickConfig configures InitSysTick.
type SysTickConfig struct {
	CoreClock uint32 // Processor clock feeding SysTick, in Hz
	Priority  uint8  // Raw SHP byte for the SysTick handler
}

// DefaultSysTickConfig runs SysTick from the HSI clock at the lowest priority.
func DefaultSysTickConfig() SysTickConfig {
	return SysTickConfig{
		CoreClock: SystemCoreClock(),
		Priority:  LowestPriority,
	}
}

// ReloadValue returns the LOAD value producing one interrupt per millisecond.
func ReloadValue(coreClock uint32) uint32 {
	return coreClock/TickRate - 1
}

// InitSysTick programs and starts the SysTick timer. LOAD and VAL are written
// before the counter is enabled so the first interrupt fires after a full period.
func InitSysTick(scb *SCBBlock, st *SysTickBlock, cfg SysTickConfig) {
	scb.SHP[SysTickPriorityIndex].Set(cfg.Priority)
	st.LOAD.Set(ReloadValue(cfg.CoreClock))
	st.VAL.Set(0)
	st.CTRL.Set(SysTick_CTRL_ENABLE | SysTick_CTRL_CLKSOURCE | SysTick_CTRL_TICKINT)
}
