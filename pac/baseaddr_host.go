//go:build !tinygo

package pac

// Host builds back every block with ordinary memory so drivers and
// tests run under plain go test.
func newPeripherals() *Peripherals {
	return &Peripherals{
		RCC:   new(RCC),
		AFIO:  new(AFIO),
		GPIOA: new(GPIO),
		GPIOC: new(GPIO),
		GPIOD: new(GPIO),
		I2C1:  new(I2C),
	}
}
