//go:build tinygo

// cmd/aht20/main.go
//
// Reads an AHT20 temperature/humidity sensor on I2C1 (PC2 SCL, PC1 SDA)
// and prints fixed-point readings. Assumes the startup code left the
// core on the 24 MHz HSI.
package main

import (
	"time"

	"tinygo.org/x/drivers/aht20"

	"ch32v00x-hal/afio"
	"ch32v00x-hal/gpio"
	"ch32v00x-hal/i2c"
	"ch32v00x-hal/pac"
	"ch32v00x-hal/rcc"
)

func main() {
	time.Sleep(1 * time.Second)
	println("boot")

	p := pac.Take()
	rc := rcc.Constrain(p.RCC)

	remap, err := afio.Constrain(p.AFIO).I2C1Remap()
	if err != nil {
		panic(err)
	}

	portc := gpio.Split(p.GPIOC, gpio.PortC, rc)
	scl := portc.MustPin(2)
	sda := portc.MustPin(1)
	scl.Configure(gpio.ModeAltOpenDrain)
	sda.Configure(gpio.ModeAltOpenDrain)

	bus, err := i2c.Open(p.I2C1, scl, sda, i2c.FastMode(), remap, rc, rcc.DefaultClocks())
	if err != nil {
		panic(err)
	}

	sensor := aht20.New(bus)
	sensor.Configure()

	for {
		if err := sensor.Read(); err != nil {
			println("aht20:", err.Error())
		} else {
			println("temp:", sensor.DeciCelsius(), "dC  rh:", sensor.DeciRelHumidity(), "d%")
		}
		time.Sleep(2 * time.Second)
	}
}
