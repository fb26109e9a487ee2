// Package rcc drives the reset and clock control block: per-peripheral
// clock gates and reset lines, and the resolved clock context consumed
// by bus drivers. Clock-tree programming (PLL, dividers) is out of
// scope; Clocks values describe frequencies configured elsewhere.
package rcc

import "ch32v00x-hal/pac"

// HSI is the internal RC oscillator frequency in Hz.
const HSI = 24_000_000

// Peripheral identifies one gated peripheral.
type Peripheral uint8

const (
	AFIO Peripheral = iota
	GPIOA
	GPIOC
	GPIOD
	ADC1
	TIM1
	SPI1
	USART1
	TIM2
	WWDG
	I2C1
	PWR
	numPeripherals
)

// Enable and reset bits share positions within each APB bank, so one
// line entry serves both registers.
type line struct {
	apb2 bool
	bit  uint32
}

var lines = [numPeripherals]line{
	AFIO:   {apb2: true, bit: pac.RCC_APB2PCENR_AFIOEN},
	GPIOA:  {apb2: true, bit: pac.RCC_APB2PCENR_IOPAEN},
	GPIOC:  {apb2: true, bit: pac.RCC_APB2PCENR_IOPCEN},
	GPIOD:  {apb2: true, bit: pac.RCC_APB2PCENR_IOPDEN},
	ADC1:   {apb2: true, bit: pac.RCC_APB2PCENR_ADC1EN},
	TIM1:   {apb2: true, bit: pac.RCC_APB2PCENR_TIM1EN},
	SPI1:   {apb2: true, bit: pac.RCC_APB2PCENR_SPI1EN},
	USART1: {apb2: true, bit: pac.RCC_APB2PCENR_USART1EN},
	TIM2:   {bit: pac.RCC_APB1PCENR_TIM2EN},
	WWDG:   {bit: pac.RCC_APB1PCENR_WWDGEN},
	I2C1:   {bit: pac.RCC_APB1PCENR_I2C1EN},
	PWR:    {bit: pac.RCC_APB1PCENR_PWREN},
}

// RCC owns the clock gate and reset line registers.
type RCC struct {
	rb *pac.RCC
}

// Constrain wraps the raw block.
func Constrain(rb *pac.RCC) *RCC {
	return &RCC{rb: rb}
}

// Enable opens the peripheral's clock gate.
func (r *RCC) Enable(p Peripheral) {
	l := lines[p]
	if l.apb2 {
		r.rb.APB2PCENR.SetBits(l.bit)
	} else {
		r.rb.APB1PCENR.SetBits(l.bit)
	}
}

// Reset pulses the peripheral's reset line, returning its registers to
// power-on defaults.
func (r *RCC) Reset(p Peripheral) {
	l := lines[p]
	if l.apb2 {
		r.rb.APB2PRSTR.SetBits(l.bit)
		r.rb.APB2PRSTR.ClearBits(l.bit)
	} else {
		r.rb.APB1PRSTR.SetBits(l.bit)
		r.rb.APB1PRSTR.ClearBits(l.bit)
	}
}

// Clocks is a resolved clock context: the frequencies the clock tree has
// been configured to, as values drivers can consume.
type Clocks struct {
	sysclk uint32
	hclk   uint32
}

// DefaultClocks describes the power-on state: the core on the 24 MHz
// HSI with no divider.
func DefaultClocks() Clocks {
	return FixedClocks(HSI)
}

// FixedClocks describes a core whose AHB runs undivided at sysclkHz.
// Both APB banks run at HCLK on this family.
func FixedClocks(sysclkHz uint32) Clocks {
	return Clocks{sysclk: sysclkHz, hclk: sysclkHz}
}

// SysClk returns the system core clock in Hz.
func (c Clocks) SysClk() uint32 { return c.sysclk }

// HClk returns the AHB clock in Hz.
func (c Clocks) HClk() uint32 { return c.hclk }

// PClk1 returns the APB1 peripheral clock in Hz (equal to HCLK; this
// family has no APB prescaler).
func (c Clocks) PClk1() uint32 { return c.hclk }
