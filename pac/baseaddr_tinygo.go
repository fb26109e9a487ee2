//go:build tinygo

package pac

import "unsafe"

// Block base addresses, CH32V00x memory map.
const (
	i2c1Base  uintptr = 0x4000_5400
	afioBase  uintptr = 0x4001_0000
	gpioaBase uintptr = 0x4001_0800
	gpiocBase uintptr = 0x4001_1000
	gpiodBase uintptr = 0x4001_1400
	rccBase   uintptr = 0x4002_1000
)

func newPeripherals() *Peripherals {
	return &Peripherals{
		RCC:   (*RCC)(unsafe.Pointer(rccBase)),
		AFIO:  (*AFIO)(unsafe.Pointer(afioBase)),
		GPIOA: (*GPIO)(unsafe.Pointer(gpioaBase)),
		GPIOC: (*GPIO)(unsafe.Pointer(gpiocBase)),
		GPIOD: (*GPIO)(unsafe.Pointer(gpiodBase)),
		I2C1:  (*I2C)(unsafe.Pointer(i2c1Base)),
	}
}
