// Command blinky-host runs the blinker off-target: against a simulated register
// file, or driving a Linux GPIO line, with a wall-clock 1 kHz tick source.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blinky/core"
	"blinky/host/gpio"
	"blinky/host/ticker"
)

// options holds the parsed command line.
type options struct {
	backend   string
	chip      string
	line      int
	activeLow bool
	period    time.Duration
	duration  time.Duration
	poll      time.Duration
	verbose   bool
	trace     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.backend, "backend", "sim", `LED backend: "sim" (simulated registers) or "gpiocdev" (Linux GPIO line)`)
	flag.StringVar(&opts.chip, "chip", gpio.DefaultChip, "GPIO chip for the gpiocdev backend")
	flag.IntVar(&opts.line, "line", int(core.LEDPin), "Pin number (line offset for gpiocdev)")
	flag.BoolVar(&opts.activeLow, "active-low", false, "LED is on when the line is low")
	flag.DurationVar(&opts.period, "period", time.Duration(core.BlinkPeriod)*time.Millisecond, "Toggle period")
	flag.DurationVar(&opts.duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	flag.DurationVar(&opts.poll, "poll", 100*time.Microsecond, "Pause between loop iterations")
	flag.BoolVar(&opts.verbose, "verbose", false, "Log every toggle")
	flag.BoolVar(&opts.trace, "trace", false, "Dump the timing ring on exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stderr); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(ctx context.Context, opts options, logOut io.Writer) error {
	logger := log.New(logOut, "blinky: ", log.Ltime|log.Lmicroseconds)

	if opts.line < 0 || opts.line > 255 {
		return fmt.Errorf("line %d out of range", opts.line)
	}
	period := core.TimerFromMS(uint32(opts.period / time.Millisecond))
	if period == 0 {
		return fmt.Errorf("period %v is shorter than one tick", opts.period)
	}

	out, closeOut, err := openBackend(opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOut(); err != nil {
			logger.Printf("close backend: %v", err)
		}
	}()

	core.SetDebugWriter(func(s string) { logger.Println(s) })
	core.SetDebugEnabled(opts.verbose)
	if opts.verbose {
		core.InitAsyncDebug()
	}

	b := core.NewBlinker(out, core.GPIOPin(opts.line), period)
	b.Trace = new(core.TimingRing)
	if err := b.Init(); err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	b.Start()

	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	logger.Printf("started: backend=%s pin=%d period=%dms", opts.backend, opts.line, period)

	err = runLoop(ctx, b, ticker.New(core.TickRate), opts.poll)
	logger.Printf("stopped: toggles=%d led=%s tick=%d", b.Toggles(), b.State(), b.Now())
	if opts.trace {
		b.Trace.Dump()
	}
	return err
}

// openBackend returns the LED driver for opts and a function releasing it.
func openBackend(opts options) (core.GPIODriver, func() error, error) {
	switch opts.backend {
	case "sim":
		if opts.line >= core.GPIOPinsPerPort {
			return nil, nil, fmt.Errorf("pin %d does not exist on a simulated port", opts.line)
		}
		return core.NewSimBoard().LEDPort(), func() error { return nil }, nil
	case "gpiocdev":
		d, err := gpio.Open(&gpio.Config{Chip: opts.chip, ActiveLow: opts.activeLow})
		if err != nil {
			return nil, nil, fmt.Errorf("init gpio: %w", err)
		}
		return d, d.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", opts.backend)
	}
}

// tickSource stands in for the SysTick interrupt.
type tickSource interface {
	Run(ctx context.Context, tick func()) error
}

// runLoop polls b until ctx is done while src advances its tick counter.
// Cancellation is a clean stop; a driver error ends the loop.
func runLoop(ctx context.Context, b *core.Blinker, src tickSource, poll time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srcDone := make(chan error, 1)
	go func() {
		srcDone <- src.Run(ctx, b.Tick)
	}()

	var loopErr error
	for ctx.Err() == nil {
		if _, err := b.Step(); err != nil {
			loopErr = fmt.Errorf("toggle led: %w", err)
			break
		}
		if poll > 0 {
			time.Sleep(poll)
		}
	}
	cancel()

	if err := <-srcDone; err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(loopErr, fmt.Errorf("tick source: %w", err))
	}
	return loopErr
}
