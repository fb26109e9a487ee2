// Package afio manages the alternate-function routing block. PCFR1 is a
// single register shared by every remappable peripheral, so write access
// is handed out as per-peripheral capabilities that each own only their
// bits.
package afio

import "ch32v00x-hal/pac"

// Error is a stable failure identifier.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrRemapClaimed is returned when a remap capability has already
	// been handed out.
	ErrRemapClaimed Error = "afio: i2c1 remap already claimed"
)

// AFIO owns the routing block and tracks which capabilities are out.
type AFIO struct {
	rb          *pac.AFIO
	i2c1Claimed bool
}

// Constrain wraps the raw block.
func Constrain(rb *pac.AFIO) *AFIO {
	return &AFIO{rb: rb}
}

// I2C1Remap grants exclusive access to PCFR1's two I2C1 routing bits.
// It can be claimed once; a second claim reports ErrRemapClaimed.
func (a *AFIO) I2C1Remap() (*I2C1Remap, error) {
	if a.i2c1Claimed {
		return nil, ErrRemapClaimed
	}
	a.i2c1Claimed = true
	return &I2C1Remap{rb: a.rb}, nil
}

// I2C1Remap is the capability to program the I2C1 pin routing.
type I2C1Remap struct {
	rb *pac.AFIO
}

// Program writes the two routing bits, preserving every other PCFR1
// field.
func (r *I2C1Remap) Program(high, low bool) {
	v := r.rb.PCFR1.Get() &^ (pac.AFIO_PCFR1_I2C1REMAP1 | pac.AFIO_PCFR1_I2C1RM)
	if high {
		v |= pac.AFIO_PCFR1_I2C1REMAP1
	}
	if low {
		v |= pac.AFIO_PCFR1_I2C1RM
	}
	r.rb.PCFR1.Set(v)
}
