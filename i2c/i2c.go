// Package i2c is the blocking I2C1 master engine. Open binds the
// controller to a validated SCL/SDA pair and programs its timing; the
// transaction calls then drive the protocol state machine directly on
// the status registers, polling without timeouts until the hardware
// advances. The engine satisfies drivers.I2C, so device drivers from
// tinygo.org/x/drivers run on top of it.
package i2c

import (
	"tinygo.org/x/drivers"

	"ch32v00x-hal/afio"
	"ch32v00x-hal/gpio"
	"ch32v00x-hal/pac"
	"ch32v00x-hal/rcc"
)

// Error is a stable transaction failure identifier.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrBus reports an unexpected bus condition such as a misplaced
	// start or stop.
	ErrBus Error = "i2c: bus error"
	// ErrAckFailure reports a byte the target did not acknowledge.
	ErrAckFailure Error = "i2c: acknowledge failure"
	// ErrArbitrationLost reports losing the bus to another master.
	ErrArbitrationLost Error = "i2c: arbitration lost"
	// ErrOverrun reports receive data lost to an overrun.
	ErrOverrun Error = "i2c: overrun"
	// ErrInvalidPins reports an SCL/SDA pair the multiplexer cannot
	// route to I2C1.
	ErrInvalidPins Error = "i2c: invalid scl/sda pair"
	// ErrBadAddress reports a target address outside the 7-bit range.
	ErrBadAddress Error = "i2c: address out of range"
)

// I2C is an open bus master. It owns the controller block and both bus
// pins from Open until Close. It must be used from a single execution
// context; there is no internal locking, and the transaction calls
// block until the hardware advances.
type I2C struct {
	bus *pac.I2C
	scl *gpio.Pin
	sda *gpio.Pin
}

var _ drivers.I2C = (*I2C)(nil)

// Open initialises the controller on the given pins and returns the
// bus master. The pins must already be claimed and configured
// (open-drain alternate function is the recommended configuration) and
// must form one of the pairs the multiplexer routes to I2C1: PC2/PC1,
// PD1/PD0 or PC5/PC6 (SCL/SDA). remap is the caller's claim on the
// shared routing bits, and clk supplies the already-resolved peripheral
// clock.
func Open(bus *pac.I2C, scl, sda *gpio.Pin, cfg Config, remap *afio.I2C1Remap, rc *rcc.RCC, clk rcc.Clocks) (*I2C, error) {
	high, low, ok := remapBits(scl.ID(), sda.ID())
	if !ok {
		return nil, ErrInvalidPins
	}

	// Clock the controller and put it into a known state regardless of
	// prior use.
	rc.Enable(rcc.I2C1)
	rc.Reset(rcc.I2C1)
	rc.Enable(rcc.AFIO)

	bus.CTLR1.SetBits(pac.I2C_CTLR1_SWRST)
	bus.CTLR1.ClearBits(pac.I2C_CTLR1_SWRST)

	remap.Program(high, low)

	t := ResolveTiming(clk.PClk1(), cfg)
	bus.CTLR2.ReplaceBits(uint32(t.Freq), pac.I2C_CTLR2_FREQ_Msk, pac.I2C_CTLR2_FREQ_Pos)

	ck := uint32(t.CCR) & pac.I2C_CKCFGR_CCR_Msk
	if t.FastMode {
		ck |= pac.I2C_CKCFGR_F_S
	}
	if t.Duty36 {
		ck |= pac.I2C_CKCFGR_DUTY
	}
	bus.CKCFGR.Set(ck)

	// Acknowledge generation is armed only once the peripheral is
	// enabled; the two writes must stay in this order.
	bus.CTLR1.SetBits(pac.I2C_CTLR1_PE)
	bus.CTLR1.SetBits(pac.I2C_CTLR1_ACK)

	return &I2C{bus: bus, scl: scl, sda: sda}, nil
}

// Close disables the controller and hands back the hardware resources.
// Nothing else is touched: re-opening from the returned resources
// behaves exactly like a fresh Open.
func (i *I2C) Close() (*pac.I2C, *gpio.Pin, *gpio.Pin) {
	i.bus.CTLR1.ClearBits(pac.I2C_CTLR1_PE)
	return i.bus, i.scl, i.sda
}

// waitWhile polls the status pair until cond reports false. STAR1 must
// be read before STAR2 within each poll: the STAR1 read arms the
// flag-clearing side effects that the STAR2 read completes.
func (i *I2C) waitWhile(cond func(s1, s2 uint32) bool) {
	for {
		s1 := i.bus.STAR1.Get()
		s2 := i.bus.STAR2.Get()
		if !cond(s1, s2) {
			return
		}
	}
}

// checkError classifies the latched STAR1 error bits, highest priority
// first. It runs once per transaction, after the protocol sequence; the
// caller decides whether to retry, reset or give up.
func (i *I2C) checkError() error {
	s1 := i.bus.STAR1.Get()
	switch {
	case s1&pac.I2C_STAR1_BERR != 0:
		return ErrBus
	case s1&pac.I2C_STAR1_AF != 0:
		return ErrAckFailure
	case s1&pac.I2C_STAR1_ARLO != 0:
		return ErrArbitrationLost
	case s1&pac.I2C_STAR1_OVR != 0:
		return ErrOverrun
	}
	return nil
}

// Write sends p to the 7-bit target address in one transaction.
func (i *I2C) Write(addr uint8, p []byte) error {
	// Wait for the bus to go idle.
	i.waitWhile(func(_, s2 uint32) bool {
		return s2&pac.I2C_STAR2_BUSY != 0
	})

	i.bus.CTLR1.SetBits(pac.I2C_CTLR1_START)

	// Start sent and master mode assigned.
	i.waitWhile(func(s1, s2 uint32) bool {
		return s1&pac.I2C_STAR1_SB == 0 ||
			s2&pac.I2C_STAR2_BUSY == 0 ||
			s2&pac.I2C_STAR2_MSL == 0
	})

	i.bus.DATAR.Set(uint32(addr) << 1)

	// Address acknowledged and transmitter role taken.
	i.waitWhile(func(s1, s2 uint32) bool {
		return s1&pac.I2C_STAR1_ADDR == 0 ||
			s1&pac.I2C_STAR1_TXE == 0 ||
			s2&pac.I2C_STAR2_BUSY == 0 ||
			s2&pac.I2C_STAR2_MSL == 0 ||
			s2&pac.I2C_STAR2_TRA == 0
	})

	for _, b := range p {
		i.waitWhile(func(s1, _ uint32) bool {
			return s1&pac.I2C_STAR1_TXE == 0
		})
		i.bus.DATAR.Set(uint32(b))
	}

	// Let the whole transmission drain to the wire.
	i.waitWhile(func(s1, s2 uint32) bool {
		return s1&pac.I2C_STAR1_BTF == 0 ||
			s1&pac.I2C_STAR1_TXE == 0 ||
			s2&pac.I2C_STAR2_BUSY == 0 ||
			s2&pac.I2C_STAR2_MSL == 0 ||
			s2&pac.I2C_STAR2_TRA == 0
	})

	i.bus.CTLR1.SetBits(pac.I2C_CTLR1_STOP)

	return i.checkError()
}

// Read fills p from the 7-bit target address in one transaction.
func (i *I2C) Read(addr uint8, p []byte) error {
	i.waitWhile(func(_, s2 uint32) bool {
		return s2&pac.I2C_STAR2_BUSY != 0
	})

	i.bus.CTLR1.SetBits(pac.I2C_CTLR1_START)

	i.waitWhile(func(s1, s2 uint32) bool {
		return s1&pac.I2C_STAR1_SB == 0 ||
			s2&pac.I2C_STAR2_BUSY == 0 ||
			s2&pac.I2C_STAR2_MSL == 0
	})

	i.bus.DATAR.Set(uint32(addr)<<1 | 1)

	// Address acknowledged; the controller is the receiver here, so no
	// transmitter-role or transmit-empty condition applies.
	i.waitWhile(func(s1, s2 uint32) bool {
		return s1&pac.I2C_STAR1_ADDR == 0 ||
			s2&pac.I2C_STAR2_BUSY == 0 ||
			s2&pac.I2C_STAR2_MSL == 0
	})

	for n := range p {
		i.waitWhile(func(s1, s2 uint32) bool {
			return s1&pac.I2C_STAR1_RXNE == 0 ||
				s2&pac.I2C_STAR2_MSL == 0 ||
				s2&pac.I2C_STAR2_BUSY == 0
		})
		p[n] = byte(i.bus.DATAR.Get())
	}

	i.bus.CTLR1.SetBits(pac.I2C_CTLR1_STOP)

	return i.checkError()
}

// WriteRead writes w and, if the write succeeded, reads into r. The two
// halves are complete transactions with their own start and stop
// conditions, not a repeated start; this is the composition
// register-pointer device protocols rely on.
func (i *I2C) WriteRead(addr uint8, w, r []byte) error {
	if err := i.Write(addr, w); err != nil {
		return err
	}
	return i.Read(addr, r)
}

// Tx implements drivers.I2C. A non-empty w is written first; a
// non-empty r is then filled by a separate read transaction, each with
// its own start/stop cycle.
func (i *I2C) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return ErrBadAddress
	}
	if len(w) > 0 {
		if err := i.Write(uint8(addr), w); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		return i.Read(uint8(addr), r)
	}
	return nil
}
