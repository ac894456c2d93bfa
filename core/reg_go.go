//go:build !tinygo

package core

import "sync/atomic"

// Reg32 mirrors volatile.Register32 for host builds. Register blocks allocated in
// ordinary memory act as a simulated register file; the tick source and the main
// loop may run on different goroutines there, so accesses are atomic.
type Reg32 struct {
	Reg uint32
}

// Get returns the register value.
func (r *Reg32) Get() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

// Set stores value into the register.
func (r *Reg32) Set(value uint32) {
	atomic.StoreUint32(&r.Reg, value)
}

// SetBits ORs value into the register.
func (r *Reg32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits clears the bits of value in the register.
func (r *Reg32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reports whether any bit of value is set.
func (r *Reg32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

// ReplaceBits replaces the field mask<<pos with value<<pos, leaving other bits alone.
func (r *Reg32) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}

// Reg8 mirrors volatile.Register8 for host builds.
type Reg8 struct {
	Reg uint8
}

// Get returns the register value.
func (r *Reg8) Get() uint8 {
	return r.Reg
}

// Set stores value into the register.
func (r *Reg8) Set(value uint8) {
	r.Reg = value
}
