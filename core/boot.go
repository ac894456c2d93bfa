package core

// Boot brings up the board for b and starts its clock. b must already be
// reachable from the SysTick handler: the first interrupt can fire as soon as
// InitSysTick returns.
func Boot(board *Board, b *Blinker, cfg SysTickConfig) error {
	SystemInit(board.CPACR)

	if err := b.Init(); err != nil {
		return err
	}

	InitSysTick(board.SCB, board.SysTick, cfg)
	b.Start()
	return nil
}
