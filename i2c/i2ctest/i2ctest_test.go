//go:build !tinygo

package i2ctest_test

import (
	"strings"
	"testing"

	"ch32v00x-hal/i2c/i2ctest"
	"ch32v00x-hal/pac"
)

func TestStallGuardPanics(t *testing.T) {
	bus, rcb := new(pac.I2C), new(pac.RCC)
	c := i2ctest.Bind(bus, rcb)
	c.PollBudget = 50

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("endless poll loop did not panic")
		}
		if s, ok := v.(string); !ok || !strings.Contains(s, "stalled") {
			t.Fatalf("panic value %v", v)
		}
	}()
	// A driver bug: polling a condition the hardware will never meet.
	for {
		bus.STAR1.Get()
		bus.STAR2.Get()
	}
}

func TestWritesResetThePollBudget(t *testing.T) {
	bus, rcb := new(pac.I2C), new(pac.RCC)
	c := i2ctest.Bind(bus, rcb)
	c.PollBudget = 50

	for n := 0; n < 500; n++ {
		bus.STAR1.Get()
		bus.STAR2.Get()
		bus.CTLR1.Set(0) // progress
	}
}

func TestFaultsLatchAcrossStop(t *testing.T) {
	bus, rcb := new(pac.I2C), new(pac.RCC)
	c := i2ctest.Bind(bus, rcb)

	c.InjectFault(pac.I2C_STAR1_OVR)
	bus.CTLR1.SetBits(pac.I2C_CTLR1_START)
	bus.CTLR1.SetBits(pac.I2C_CTLR1_STOP)

	if bus.STAR1.Raw()&pac.I2C_STAR1_OVR == 0 {
		t.Fatal("error flag cleared by stop")
	}
	if bus.STAR1.Raw()&pac.I2C_STAR1_SB != 0 {
		t.Fatal("event flag survived stop")
	}
	if bus.STAR2.Raw() != 0 {
		t.Fatal("bus not idle after stop")
	}

	// Only a controller reset clears latched errors.
	rcb.APB1PRSTR.SetBits(pac.RCC_APB1PRSTR_I2C1RST)
	if bus.STAR1.Raw() != 0 {
		t.Fatalf("STAR1 = %#x after reset", bus.STAR1.Raw())
	}
}

func TestStartAndStopSelfClear(t *testing.T) {
	bus, rcb := new(pac.I2C), new(pac.RCC)
	i2ctest.Bind(bus, rcb)

	bus.CTLR1.SetBits(pac.I2C_CTLR1_START)
	if bus.CTLR1.Raw()&pac.I2C_CTLR1_START != 0 {
		t.Fatal("START stuck")
	}
	bus.CTLR1.SetBits(pac.I2C_CTLR1_STOP)
	if bus.CTLR1.Raw()&pac.I2C_CTLR1_STOP != 0 {
		t.Fatal("STOP stuck")
	}
}

func TestOpKindStrings(t *testing.T) {
	names := map[i2ctest.OpKind]string{
		i2ctest.OpStart:     "start",
		i2ctest.OpAddrWrite: "addr+w",
		i2ctest.OpAddrRead:  "addr+r",
		i2ctest.OpWriteByte: "write",
		i2ctest.OpReadByte:  "read",
		i2ctest.OpStop:      "stop",
	}
	for k, want := range names {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
