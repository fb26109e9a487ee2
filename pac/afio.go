package pac

import "ch32v00x-hal/mmio"

// AFIO is the alternate-function port-configuration block
// (base 0x40010000). PCFR1 is shared by every remappable peripheral;
// drivers must touch only their own bits.
type AFIO struct {
	PCFR1  mmio.R32 // remap configuration
	EXTICR mmio.R32 // external interrupt line routing
}

// PCFR1 bits.
const (
	AFIO_PCFR1_SPI1RM       = 1 << 0 // SPI1 remap
	AFIO_PCFR1_I2C1RM       = 1 << 1 // I2C1 remap, low bit
	AFIO_PCFR1_USART1RM     = 1 << 2 // USART1 remap, low bit
	AFIO_PCFR1_TIM1RM_Pos   = 6      // TIM1 remap, two bits
	AFIO_PCFR1_TIM1RM_Msk   = 0x3
	AFIO_PCFR1_TIM2RM_Pos   = 8 // TIM2 remap, two bits
	AFIO_PCFR1_TIM2RM_Msk   = 0x3
	AFIO_PCFR1_PA12RM       = 1 << 15 // PA1/PA2 as oscillator pins
	AFIO_PCFR1_ADCETRGIRM   = 1 << 17 // ADC injected trigger remap
	AFIO_PCFR1_ADCETRGRRM   = 1 << 18 // ADC regular trigger remap
	AFIO_PCFR1_USART1REMAP1 = 1 << 21 // USART1 remap, high bit
	AFIO_PCFR1_I2C1REMAP1   = 1 << 22 // I2C1 remap, high bit
	AFIO_PCFR1_SWCFG_Pos    = 24     // debug interface configuration
	AFIO_PCFR1_SWCFG_Msk    = 0x7
)
