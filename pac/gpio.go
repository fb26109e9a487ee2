package pac

import "ch32v00x-hal/mmio"

// GPIO is one port register block (GPIOA 0x40010800, GPIOC 0x40011000,
// GPIOD 0x40011400). Each port has eight lines; CFGHR exists in the
// block layout but is unused on this family.
type GPIO struct {
	CFGLR mmio.R32 // configuration, one nibble per line
	CFGHR mmio.R32
	INDR  mmio.R32 // input data
	OUTDR mmio.R32 // output data
	BSHR  mmio.R32 // bit set (low half) / reset (high half) strobe
	BCR   mmio.R32 // bit reset strobe
	LCKR  mmio.R32 // configuration lock
}
