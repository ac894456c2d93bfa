//go:build tinygo

package core

import "runtime/volatile"

// Reg32 is a 32-bit memory-mapped register. On target every access goes through
// runtime/volatile so the compiler never caches or reorders it.
type Reg32 = volatile.Register32

// Reg8 is an 8-bit memory-mapped register.
type Reg8 = volatile.Register8
