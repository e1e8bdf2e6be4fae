package cia

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/jmchacon/sys65/irq"
)

func TestTimerAOneShotFiresAndStops(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x04, 0x02) // latch low = 2
	c.Write(0x05, 0x00) // latch high: timerA loads to 2 now (CRA_START still clear)
	c.Write(0x0D, icrSet|icrTA)
	c.Write(0x0E, craStart|craRunMode) // one-shot, start now

	for cyc := uint64(1); cyc < 3; cyc++ {
		if level := c.Poll(cyc); level != irq.None {
			t.Fatalf("Poll(%d) = %v, want None", cyc, level)
		}
	}
	if level := c.Poll(3); level != irq.IRQ {
		t.Fatalf("Poll(3) = %v, want IRQ when the counter reads zero at tick entry", level)
	}
	if c.cra&craStart != 0 {
		t.Errorf("one-shot timer A should clear START on underflow")
	}
}

func TestICRReadIsDestructive(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x04, 0x01)
	c.Write(0x05, 0x00)
	c.Write(0x0D, icrSet|icrTA)
	c.Write(0x0E, craStart)
	c.Poll(1)
	c.Poll(2) // timerA reads zero at entry on this tick and fires.
	first := c.Read(0x0D)
	if first&icrSet == 0 {
		t.Fatalf("first ICR read = %.2X, want master bit set", first)
	}
	second := c.Read(0x0D)
	if second != 0 {
		t.Errorf("second ICR read = %.2X, want 0 (destructive read clears icrData)", second)
	}
}

func TestTimerBCountsTimerAUnderflowsWhenGated(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x04, 0x02) // Timer A latch = 2
	c.Write(0x05, 0x00)
	c.Write(0x06, 0x02) // Timer B latch = 2 underflows of A
	c.Write(0x07, 0x00)
	c.Write(0x0D, icrSet|icrTB)
	c.Write(0x0F, crbStart|crbInTAUnd) // Timer B gated on Timer A underflow
	c.Write(0x0E, craStart)            // continuous Timer A (craRunMode clear)

	var sawIRQ bool
	for cyc := uint64(1); cyc <= 12; cyc++ {
		if c.Poll(cyc) == irq.IRQ {
			sawIRQ = true
		}
	}
	if !sawIRQ {
		t.Errorf("Timer B gated on Timer A underflow never fired")
	}
}

func TestTODAlarmRaisesICR(t *testing.T) {
	c, err := Init(&ChipDef{TODHz: 60})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x0D, icrSet|icrTOD)
	c.Write(0x0F, crbAlarm) // TOD writes address the alarm latch
	c.Write(0x08, 0x01)     // alarm tenths = 1, also starts the TOD clock running
	c.Write(0x09, 0x00)
	c.Write(0x0A, 0x00)
	c.Write(0x0B, 0x00)

	var level irq.Level
	for cyc := uint64(1); cyc <= uint64(60*100)+1; cyc++ {
		level = c.Poll(cyc)
		if level == irq.IRQ {
			break
		}
	}
	if level != irq.IRQ {
		t.Errorf("TOD alarm never raised an interrupt")
	}
}

func TestPowerOnPreservesPortWiringButClearsState(t *testing.T) {
	in := constInput(0x42)
	c, err := Init(&ChipDef{PortA: in})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x00, 0xFF)
	c.Write(0x0E, craStart)
	before := c.inA
	c.PowerOn()
	if diff := deep.Equal(before, c.inA); diff != nil {
		t.Errorf("PortA wiring changed across PowerOn: %v", diff)
	}
	if c.cra != 0 || c.orA != 0 {
		t.Errorf("PowerOn left stale register state: cra=%.2X orA=%.2X", c.cra, c.orA)
	}
}

type constInput uint8

func (c constInput) Input() uint8 { return uint8(c) }
