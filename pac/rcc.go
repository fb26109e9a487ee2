package pac

import "ch32v00x-hal/mmio"

// RCC is the reset and clock control block (base 0x40021000).
type RCC struct {
	CTLR      mmio.R32 // oscillator control
	CFGR0     mmio.R32 // clock tree configuration
	INTR      mmio.R32 // clock interrupt flags
	APB2PRSTR mmio.R32 // APB2 peripheral reset lines
	APB1PRSTR mmio.R32 // APB1 peripheral reset lines
	AHBPCENR  mmio.R32 // AHB peripheral clock gates
	APB2PCENR mmio.R32 // APB2 peripheral clock gates
	APB1PCENR mmio.R32 // APB1 peripheral clock gates
	_         mmio.R32
	RSTSCKR   mmio.R32 // reset source flags
}

// APB2PRSTR bits.
const (
	RCC_APB2PRSTR_AFIORST   = 1 << 0
	RCC_APB2PRSTR_IOPARST   = 1 << 2
	RCC_APB2PRSTR_IOPCRST   = 1 << 4
	RCC_APB2PRSTR_IOPDRST   = 1 << 5
	RCC_APB2PRSTR_ADC1RST   = 1 << 9
	RCC_APB2PRSTR_TIM1RST   = 1 << 11
	RCC_APB2PRSTR_SPI1RST   = 1 << 12
	RCC_APB2PRSTR_USART1RST = 1 << 14
)

// APB1PRSTR bits.
const (
	RCC_APB1PRSTR_TIM2RST = 1 << 0
	RCC_APB1PRSTR_WWDGRST = 1 << 11
	RCC_APB1PRSTR_I2C1RST = 1 << 21
	RCC_APB1PRSTR_PWRRST  = 1 << 28
)

// AHBPCENR bits.
const (
	RCC_AHBPCENR_DMA1EN = 1 << 0
	RCC_AHBPCENR_SRAMEN = 1 << 2
)

// APB2PCENR bits.
const (
	RCC_APB2PCENR_AFIOEN   = 1 << 0
	RCC_APB2PCENR_IOPAEN   = 1 << 2
	RCC_APB2PCENR_IOPCEN   = 1 << 4
	RCC_APB2PCENR_IOPDEN   = 1 << 5
	RCC_APB2PCENR_ADC1EN   = 1 << 9
	RCC_APB2PCENR_TIM1EN   = 1 << 11
	RCC_APB2PCENR_SPI1EN   = 1 << 12
	RCC_APB2PCENR_USART1EN = 1 << 14
)

// APB1PCENR bits.
const (
	RCC_APB1PCENR_TIM2EN = 1 << 0
	RCC_APB1PCENR_WWDGEN = 1 << 11
	RCC_APB1PCENR_I2C1EN = 1 << 21
	RCC_APB1PCENR_PWREN  = 1 << 28
)
