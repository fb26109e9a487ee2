// Package gpio claims and drives the port pins. A Port is obtained from
// its register block with Split, which opens the port's clock gate;
// individual lines are then claimed as Pin values. Claiming is the only
// guard against two drivers sharing a line, so everything pin-shaped in
// this HAL flows through here.
package gpio

import (
	"ch32v00x-hal/pac"
	"ch32v00x-hal/rcc"
)

// Error is a stable failure identifier.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrUnknownPin Error = "gpio: unknown pin"
	ErrPinInUse   Error = "gpio: pin in use"
)

// PortID names a GPIO port. Values match the port's slot in the bus
// matrix; port B does not exist on this family.
type PortID uint8

const (
	PortA PortID = 0
	PortC PortID = 2
	PortD PortID = 3
)

// PinID identifies one pin: port in the high nibble, line in the low.
type PinID uint8

const (
	PA0 PinID = iota
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
)

const (
	PC0 PinID = 0x20 + iota
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
)

const (
	PD0 PinID = 0x30 + iota
	PD1
	PD2
	PD3
	PD4
	PD5
	PD6
	PD7
)

// Port returns the pin's port.
func (id PinID) Port() PortID { return PortID(id >> 4) }

// Num returns the pin's line number within its port.
func (id PinID) Num() uint8 { return uint8(id & 0x0F) }

func (id PinID) String() string {
	return "P" + string('A'+rune(id>>4)) + string('0'+rune(id&0x0F))
}

// Mode selects a line's configuration.
type Mode uint8

const (
	ModeInputFloating Mode = iota
	ModeInputPullUp
	ModeInputPullDown
	ModeInputAnalog
	ModeOutputPushPull
	ModeOutputOpenDrain
	ModeAltPushPull
	ModeAltOpenDrain
)

// CFGLR nibble per line: CNF[1:0]<<2 | MODE[1:0]. Outputs use the
// 50 MHz drive setting. Pull direction is not encoded here; it comes
// from the output latch.
const (
	cfgInputAnalog   = 0x0
	cfgOutputPP      = 0x3
	cfgInputFloating = 0x4
	cfgOutputOD      = 0x7
	cfgInputPull     = 0x8
	cfgAltPP         = 0xB
	cfgAltOD         = 0xF
)

func (m Mode) nibble() uint32 {
	switch m {
	case ModeInputAnalog:
		return cfgInputAnalog
	case ModeInputPullUp, ModeInputPullDown:
		return cfgInputPull
	case ModeOutputPushPull:
		return cfgOutputPP
	case ModeOutputOpenDrain:
		return cfgOutputOD
	case ModeAltPushPull:
		return cfgAltPP
	case ModeAltOpenDrain:
		return cfgAltOD
	default:
		return cfgInputFloating
	}
}

// Port is a GPIO port with its clock gate open.
type Port struct {
	id   PortID
	rb   *pac.GPIO
	used uint8
}

// Split opens the port's clock gate and returns the port with every
// line unclaimed.
func Split(rb *pac.GPIO, id PortID, rc *rcc.RCC) *Port {
	rc.Enable(gate(id))
	return &Port{id: id, rb: rb}
}

func gate(id PortID) rcc.Peripheral {
	switch id {
	case PortA:
		return rcc.GPIOA
	case PortC:
		return rcc.GPIOC
	default:
		return rcc.GPIOD
	}
}

// Pin claims line n (0..7). A line stays claimed until Release.
func (p *Port) Pin(n uint8) (*Pin, error) {
	if n > 7 {
		return nil, ErrUnknownPin
	}
	if p.used&(1<<n) != 0 {
		return nil, ErrPinInUse
	}
	p.used |= 1 << n
	return &Pin{port: p, n: n}, nil
}

// MustPin is Pin for wiring code where a claim failure is a bug.
func (p *Port) MustPin(n uint8) *Pin {
	pin, err := p.Pin(n)
	if err != nil {
		panic(err)
	}
	return pin
}

// Pin is one claimed GPIO line.
type Pin struct {
	port *Port
	n    uint8
}

// ID returns the pin's identity.
func (p *Pin) ID() PinID { return PinID(uint8(p.port.id)<<4 | p.n) }

// Release returns the line to the port's free set. The Pin must not be
// used afterwards.
func (p *Pin) Release() { p.port.used &^= 1 << p.n }

// Configure programs the line's mode. For pulled inputs the pull
// direction is selected through the output latch, as the hardware
// requires.
func (p *Pin) Configure(m Mode) {
	p.port.rb.CFGLR.ReplaceBits(m.nibble(), 0xF, p.n*4)
	switch m {
	case ModeInputPullUp:
		p.SetHigh()
	case ModeInputPullDown:
		p.SetLow()
	}
}

// SetHigh drives the line high via the set strobe.
func (p *Pin) SetHigh() { p.port.rb.BSHR.Set(1 << p.n) }

// SetLow drives the line low via the reset strobe.
func (p *Pin) SetLow() { p.port.rb.BCR.Set(1 << p.n) }

// Set drives the line to the given level.
func (p *Pin) Set(high bool) {
	if high {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}

// Toggle inverts the output latch.
func (p *Pin) Toggle() {
	if p.IsSetHigh() {
		p.SetLow()
	} else {
		p.SetHigh()
	}
}

// IsHigh reads the input level.
func (p *Pin) IsHigh() bool { return p.port.rb.INDR.HasBits(1 << p.n) }

// IsLow reports the input level inverted.
func (p *Pin) IsLow() bool { return !p.IsHigh() }

// IsSetHigh reads the output latch.
func (p *Pin) IsSetHigh() bool { return p.port.rb.OUTDR.HasBits(1 << p.n) }

// IsSetLow reports the output latch inverted.
func (p *Pin) IsSetLow() bool { return !p.IsSetHigh() }
