package i2c

import "ch32v00x-hal/x/mathx"

// DutyCycle selects the fast-mode clock low/high ratio.
type DutyCycle uint8

const (
	Duty33 DutyCycle = iota // Tlow/Thigh = 2
	Duty36                  // Tlow/Thigh = 16/9
)

// Config is the requested bus configuration. Arbitrary speeds within
// the hardware's range are accepted; the zero value behaves like
// FastMode.
type Config struct {
	Speed uint32 // bus clock in Hz; 0 selects 400 kHz
	Duty  DutyCycle
}

// SlowMode is 100 kbit/s at 33% duty.
func SlowMode() Config { return Config{Speed: 100_000, Duty: Duty33} }

// FastMode is 400 kbit/s at 33% duty.
func FastMode() Config { return Config{Speed: 400_000, Duty: Duty33} }

// FastModePlus is 1 Mbit/s at 33% duty.
func FastModePlus() Config { return Config{Speed: 1_000_000, Duty: Duty33} }

// Timing is the register image a Config resolves to.
type Timing struct {
	Freq     uint8  // CTLR2 FREQ: input clock in MHz, clamped to [2,36]
	CCR      uint16 // CKCFGR CCR: clock divider
	FastMode bool   // CKCFGR F/S
	Duty36   bool   // CKCFGR DUTY
}

// ResolveTiming derives the timing registers for a peripheral input
// clock and a requested configuration. Pure computation, no hardware
// side effects.
//
// The FREQ field carries the clamped input clock in whole MHz; the
// divider is computed from the unclamped clock. Division truncates,
// with no rounding correction, for bit compatibility with existing
// configurations.
func ResolveTiming(pclkHz uint32, cfg Config) Timing {
	speed := cfg.Speed
	if speed == 0 {
		speed = FastMode().Speed
	}
	fast := speed > 100_000

	var ccr uint32
	switch {
	case !fast:
		ccr = pclkHz / (2 * speed)
	case cfg.Duty == Duty36:
		ccr = pclkHz / (25 * speed)
	default:
		ccr = pclkHz / (3 * speed)
	}

	return Timing{
		Freq:     uint8(mathx.Clamp(pclkHz/1_000_000, 2, 36)),
		CCR:      uint16(ccr),
		FastMode: fast,
		Duty36:   cfg.Duty == Duty36,
	}
}
