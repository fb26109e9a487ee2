//go:build !tinygo

// Package i2ctest simulates the I2C1 controller for driver tests on the
// host. Bind attaches a Controller to a register block's hooks; from
// then on status flags appear and clear in response to the driver's
// register accesses the way the silicon behaves, and every bus-level
// event is recorded as an Op. Received data is scripted with QueueRx,
// error flags are latched with InjectFault, and a Journal can record
// the exact register programming for comparison.
package i2ctest

import (
	"fmt"

	"ch32v00x-hal/mmio"
	"ch32v00x-hal/pac"
)

// OpKind classifies one bus-level event.
type OpKind uint8

const (
	OpStart OpKind = iota
	OpAddrWrite
	OpAddrRead
	OpWriteByte
	OpReadByte
	OpStop
)

func (k OpKind) String() string {
	switch k {
	case OpStart:
		return "start"
	case OpAddrWrite:
		return "addr+w"
	case OpAddrRead:
		return "addr+r"
	case OpWriteByte:
		return "write"
	case OpReadByte:
		return "read"
	case OpStop:
		return "stop"
	}
	return "unknown"
}

// Op is one recorded bus-level event. Data carries the raw wire byte
// for address and data events and is zero for start/stop.
type Op struct {
	Kind OpKind
	Data byte
}

// defaultPollBudget bounds status polling between register writes; a
// driver bug that would spin forever panics instead of hanging the
// test binary.
const defaultPollBudget = 10_000

// Controller models the target side of the bus together with the
// controller front end of the peripheral.
type Controller struct {
	bus *pac.I2C

	// Ops is the recorded bus trace, in order.
	Ops []Op

	// PollBudget overrides the stall guard's poll limit when non-zero.
	PollBudget int

	rx []byte

	polls   int
	s1Pair  bool // STAR1 read; the next STAR2 read completes the pair
	sbSeen  bool // SB observed via STAR1; the next DATAR write is the address
	writing bool
	reading bool
}

// Bind attaches a Controller to the block's registers. The RCC block is
// watched too, so pulsing the controller's reset line restores power-on
// state exactly like hardware.
func Bind(bus *pac.I2C, rb *pac.RCC) *Controller {
	c := &Controller{bus: bus}
	bus.CTLR1.OnSet(c.onCTLR1)
	bus.DATAR.OnSet(c.onDATARWrite)
	bus.DATAR.OnGet(c.onDATARRead)
	bus.STAR1.OnGet(c.onSTAR1Read)
	bus.STAR2.OnGet(c.onSTAR2Read)
	rb.APB1PRSTR.OnSet(c.onAPB1Reset)
	return c
}

// QueueRx scripts the bytes the target will supply to read transfers.
func (c *Controller) QueueRx(p []byte) {
	c.rx = append(c.rx, p...)
}

// InjectFault latches error bits into STAR1. Like the hardware's error
// flags they survive the end of the transaction and clear only on a
// controller reset.
func (c *Controller) InjectFault(bits uint32) {
	c.raise1(bits)
}

const latchedErrors = uint32(pac.I2C_STAR1_BERR |
	pac.I2C_STAR1_ARLO |
	pac.I2C_STAR1_AF |
	pac.I2C_STAR1_OVR)

func (c *Controller) raise1(bits uint32) { c.bus.STAR1.SetRaw(c.bus.STAR1.Raw() | bits) }
func (c *Controller) clear1(bits uint32) { c.bus.STAR1.SetRaw(c.bus.STAR1.Raw() &^ bits) }
func (c *Controller) raise2(bits uint32) { c.bus.STAR2.SetRaw(c.bus.STAR2.Raw() | bits) }

func (c *Controller) onCTLR1(old, new uint32) {
	c.polls = 0
	rising := new &^ old

	if rising&pac.I2C_CTLR1_SWRST != 0 {
		// Software reset clears everything except the control register
		// holding the reset bit itself.
		c.resetBlock(true)
	}
	if rising&pac.I2C_CTLR1_START != 0 {
		c.Ops = append(c.Ops, Op{Kind: OpStart})
		c.raise1(pac.I2C_STAR1_SB)
		c.raise2(pac.I2C_STAR2_BUSY | pac.I2C_STAR2_MSL)
		// The start request clears itself once the condition is out.
		c.bus.CTLR1.SetRaw(c.bus.CTLR1.Raw() &^ pac.I2C_CTLR1_START)
	}
	if rising&pac.I2C_CTLR1_STOP != 0 {
		c.Ops = append(c.Ops, Op{Kind: OpStop})
		c.endTransfer()
		c.bus.CTLR1.SetRaw(c.bus.CTLR1.Raw() &^ pac.I2C_CTLR1_STOP)
	}
}

func (c *Controller) onDATARWrite(_, v uint32) {
	c.polls = 0
	b := byte(v)

	if c.sbSeen && c.bus.STAR1.Raw()&pac.I2C_STAR1_SB != 0 {
		// Address byte: SB clears on the STAR1-read/DATAR-write pair.
		c.sbSeen = false
		c.clear1(pac.I2C_STAR1_SB)
		if b&1 == 0 {
			c.writing = true
			c.Ops = append(c.Ops, Op{Kind: OpAddrWrite, Data: b})
			// Nothing is pending after the address ack, so the
			// instant-drain model raises BTF along with TXE.
			c.raise1(pac.I2C_STAR1_ADDR | pac.I2C_STAR1_TXE | pac.I2C_STAR1_BTF)
			c.raise2(pac.I2C_STAR2_TRA)
		} else {
			c.reading = true
			c.Ops = append(c.Ops, Op{Kind: OpAddrRead, Data: b})
			c.raise1(pac.I2C_STAR1_ADDR)
			if len(c.rx) > 0 {
				c.raise1(pac.I2C_STAR1_RXNE)
			}
		}
		return
	}

	if c.writing {
		c.Ops = append(c.Ops, Op{Kind: OpWriteByte, Data: b})
		// The shift register drains instantly in this model.
		c.raise1(pac.I2C_STAR1_TXE | pac.I2C_STAR1_BTF)
	}
}

func (c *Controller) onDATARRead() {
	c.polls = 0
	if !c.reading || len(c.rx) == 0 {
		return
	}
	b := c.rx[0]
	c.rx = c.rx[1:]
	c.bus.DATAR.SetRaw(uint32(b))
	c.Ops = append(c.Ops, Op{Kind: OpReadByte, Data: b})
	if len(c.rx) == 0 {
		c.clear1(pac.I2C_STAR1_RXNE)
	}
}

func (c *Controller) onSTAR1Read() {
	budget := c.PollBudget
	if budget == 0 {
		budget = defaultPollBudget
	}
	c.polls++
	if c.polls > budget {
		panic(fmt.Sprintf("i2ctest: driver stalled: %d status polls without progress (STAR1=%#x STAR2=%#x)",
			c.polls, c.bus.STAR1.Raw(), c.bus.STAR2.Raw()))
	}
	c.s1Pair = true
	if c.bus.STAR1.Raw()&pac.I2C_STAR1_SB != 0 {
		c.sbSeen = true
	}
}

func (c *Controller) onSTAR2Read() {
	// ADDR clears once both status registers have been read in order.
	if c.s1Pair && c.bus.STAR1.Raw()&pac.I2C_STAR1_ADDR != 0 {
		c.clear1(pac.I2C_STAR1_ADDR)
	}
	c.s1Pair = false
}

func (c *Controller) onAPB1Reset(old, new uint32) {
	if new&^old&pac.RCC_APB1PRSTR_I2C1RST != 0 {
		c.resetBlock(false)
	}
}

// endTransfer returns the bus to idle. Latched error flags survive, as
// on hardware; everything else clears.
func (c *Controller) endTransfer() {
	c.writing, c.reading = false, false
	c.sbSeen, c.s1Pair = false, false
	c.bus.STAR1.SetRaw(c.bus.STAR1.Raw() & latchedErrors)
	c.bus.STAR2.SetRaw(0)
}

// resetBlock restores the register block's power-on state. Scripted rx
// data belongs to the target, not the controller, and is kept.
func (c *Controller) resetBlock(keepCTLR1 bool) {
	if !keepCTLR1 {
		c.bus.CTLR1.SetRaw(0)
	}
	c.bus.CTLR2.SetRaw(0)
	c.bus.OADDR1.SetRaw(0)
	c.bus.OADDR2.SetRaw(0)
	c.bus.DATAR.SetRaw(0)
	c.bus.STAR1.SetRaw(0)
	c.bus.STAR2.SetRaw(0)
	c.bus.CKCFGR.SetRaw(0)
	c.bus.RTR.SetRaw(0x02)
	c.writing, c.reading = false, false
	c.sbSeen, c.s1Pair = false, false
	c.polls = 0
}

// RegWrite is one journalled register store.
type RegWrite struct {
	Reg   string
	Value uint32
}

// Journal records every hook-visible write to the registers it is
// attached to, in order. Attach it after Bind so the model's reactions
// settle before the value is recorded; harness-internal stores bypass
// hooks and are never journalled.
type Journal struct {
	Writes []RegWrite
}

// Attach starts journalling reg under the given name.
func (j *Journal) Attach(name string, reg *mmio.R32) {
	reg.OnSet(func(_, v uint32) {
		j.Writes = append(j.Writes, RegWrite{Reg: name, Value: v})
	})
}
