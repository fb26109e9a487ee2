//go:build tinygo

// cmd/blinky/main.go
//
// Toggles the LED on PD6, the usual dev-board wiring.
package main

import (
	"time"

	"ch32v00x-hal/gpio"
	"ch32v00x-hal/pac"
	"ch32v00x-hal/rcc"
)

func main() {
	p := pac.Take()
	rc := rcc.Constrain(p.RCC)

	portd := gpio.Split(p.GPIOD, gpio.PortD, rc)
	led := portd.MustPin(6)
	led.Configure(gpio.ModeOutputPushPull)

	for {
		led.Toggle()
		time.Sleep(500 * time.Millisecond)
	}
}
