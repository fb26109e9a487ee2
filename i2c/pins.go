package i2c

import "ch32v00x-hal/gpio"

// remapBits returns the PCFR1 routing bits for a supported (SCL, SDA)
// pair. The three pairs below are the only combinations the hardware
// multiplexer routes to I2C1; anything else is rejected at Open.
func remapBits(scl, sda gpio.PinID) (high, low, ok bool) {
	switch {
	case scl == gpio.PC2 && sda == gpio.PC1:
		return false, false, true
	case scl == gpio.PD1 && sda == gpio.PD0:
		return false, true, true
	case scl == gpio.PC5 && sda == gpio.PC6:
		return true, false, true
	}
	return false, false, false
}
