// Package pac maps the CH32V00x peripheral register blocks used by this
// HAL. Layouts and bit assignments follow the vendor reference manual;
// offsets are 32-bit aligned as in the vendor headers.
package pac

// Peripherals is the device's peripheral set. There is exactly one; it
// is handed out once by Take and owned by the caller from then on.
type Peripherals struct {
	RCC   *RCC
	AFIO  *AFIO
	GPIOA *GPIO
	GPIOC *GPIO
	GPIOD *GPIO
	I2C1  *I2C
}

var taken bool

// Take transfers ownership of the peripheral set to the caller. It
// panics if called twice: a second handle to live hardware is never
// valid.
func Take() *Peripherals {
	if taken {
		panic("pac: peripherals already taken")
	}
	taken = true
	return newPeripherals()
}
