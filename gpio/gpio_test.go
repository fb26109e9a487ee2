//go:build !tinygo

package gpio_test

import (
	"errors"
	"testing"

	"ch32v00x-hal/gpio"
	"ch32v00x-hal/pac"
	"ch32v00x-hal/rcc"
)

func newPort(t *testing.T, id gpio.PortID) (*gpio.Port, *pac.GPIO, *pac.RCC) {
	t.Helper()
	rb := new(pac.GPIO)
	rcb := new(pac.RCC)
	return gpio.Split(rb, id, rcc.Constrain(rcb)), rb, rcb
}

// mirror makes the strobe registers behave like hardware: set and reset
// strobes land in the output latch.
func mirror(rb *pac.GPIO) {
	rb.BSHR.OnSet(func(_, v uint32) {
		rb.OUTDR.SetRaw(rb.OUTDR.Raw()&^(v>>16) | v&0xFFFF)
	})
	rb.BCR.OnSet(func(_, v uint32) {
		rb.OUTDR.SetRaw(rb.OUTDR.Raw() &^ v)
	})
}

func TestSplitOpensTheClockGate(t *testing.T) {
	_, _, rcb := newPort(t, gpio.PortD)
	if got := rcb.APB2PCENR.Get(); got != pac.RCC_APB2PCENR_IOPDEN {
		t.Fatalf("APB2PCENR = %#x, want IOPD gate", got)
	}
}

func TestClaimReleaseReclaim(t *testing.T) {
	port, _, _ := newPort(t, gpio.PortC)

	pin, err := port.Pin(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := port.Pin(1); !errors.Is(err, gpio.ErrPinInUse) {
		t.Fatalf("double claim: got %v", err)
	}
	if _, err := port.Pin(8); !errors.Is(err, gpio.ErrUnknownPin) {
		t.Fatalf("out of range: got %v", err)
	}

	pin.Release()
	if _, err := port.Pin(1); err != nil {
		t.Fatalf("reclaim after release: %v", err)
	}
}

func TestMustPinPanicsWhenClaimed(t *testing.T) {
	port, _, _ := newPort(t, gpio.PortA)
	port.MustPin(5)
	defer func() {
		if recover() == nil {
			t.Fatal("MustPin on a claimed line did not panic")
		}
	}()
	port.MustPin(5)
}

func TestPinID(t *testing.T) {
	port, _, _ := newPort(t, gpio.PortC)
	pin := port.MustPin(2)
	if pin.ID() != gpio.PC2 {
		t.Fatalf("ID = %v, want PC2", pin.ID())
	}
	if gpio.PC2.Port() != gpio.PortC || gpio.PC2.Num() != 2 {
		t.Fatalf("PC2 decodes to port %d line %d", gpio.PC2.Port(), gpio.PC2.Num())
	}
	if s := gpio.PD6.String(); s != "PD6" {
		t.Fatalf("String = %q", s)
	}
}

func TestConfigureProgramsOneNibble(t *testing.T) {
	port, rb, _ := newPort(t, gpio.PortD)
	rb.CFGLR.SetRaw(0xFFFF_FFFF)

	pin := port.MustPin(3)
	pin.Configure(gpio.ModeInputAnalog)
	if got := rb.CFGLR.Get(); got != 0xFFFF_0FFF {
		t.Fatalf("CFGLR = %#x, want only pin 3's nibble cleared", got)
	}
}

func TestConfigureNibbles(t *testing.T) {
	cases := []struct {
		mode gpio.Mode
		want uint32
	}{
		{gpio.ModeInputAnalog, 0x0},
		{gpio.ModeOutputPushPull, 0x3},
		{gpio.ModeInputFloating, 0x4},
		{gpio.ModeOutputOpenDrain, 0x7},
		{gpio.ModeInputPullUp, 0x8},
		{gpio.ModeInputPullDown, 0x8},
		{gpio.ModeAltPushPull, 0xB},
		{gpio.ModeAltOpenDrain, 0xF},
	}
	for _, c := range cases {
		port, rb, _ := newPort(t, gpio.PortC)
		port.MustPin(0).Configure(c.mode)
		if got := rb.CFGLR.Get() & 0xF; got != c.want {
			t.Fatalf("mode %d: nibble %#x, want %#x", c.mode, got, c.want)
		}
	}
}

func TestPullDirectionUsesTheLatch(t *testing.T) {
	port, rb, _ := newPort(t, gpio.PortC)
	mirror(rb)

	up := port.MustPin(4)
	up.Configure(gpio.ModeInputPullUp)
	if !up.IsSetHigh() {
		t.Fatal("pull-up did not set the latch")
	}

	down := port.MustPin(5)
	down.Configure(gpio.ModeInputPullDown)
	if !down.IsSetLow() {
		t.Fatal("pull-down did not clear the latch")
	}
}

func TestSetAndToggle(t *testing.T) {
	port, rb, _ := newPort(t, gpio.PortD)
	mirror(rb)

	led := port.MustPin(6)
	led.Configure(gpio.ModeOutputPushPull)

	led.SetHigh()
	if !led.IsSetHigh() || led.IsSetLow() {
		t.Fatal("SetHigh not visible in the latch")
	}
	led.Toggle()
	if !led.IsSetLow() {
		t.Fatal("Toggle high->low failed")
	}
	led.Toggle()
	if !led.IsSetHigh() {
		t.Fatal("Toggle low->high failed")
	}
	led.Set(false)
	if led.IsSetHigh() {
		t.Fatal("Set(false) failed")
	}

	// Strobes must not disturb other lines.
	rb.OUTDR.SetRaw(0x81)
	led.SetHigh()
	if got := rb.OUTDR.Get(); got != 0xC1 {
		t.Fatalf("OUTDR = %#x, want 0xc1", got)
	}
}

func TestInputReads(t *testing.T) {
	port, rb, _ := newPort(t, gpio.PortA)
	btn := port.MustPin(2)
	btn.Configure(gpio.ModeInputFloating)

	if btn.IsHigh() {
		t.Fatal("input reads high with INDR clear")
	}
	rb.INDR.SetRaw(1 << 2)
	if !btn.IsHigh() || btn.IsLow() {
		t.Fatal("input low with INDR bit set")
	}
}
