//go:build tinygo

// Package mmio is the register-access layer shared by every peripheral
// block. On MCU builds a register is a volatile 32-bit location; on host
// builds it is plain memory with test hooks, so the drivers and their
// tests compile and run under ordinary go test.
package mmio

import "runtime/volatile"

// R32 is a 32-bit hardware register.
type R32 = volatile.Register32
