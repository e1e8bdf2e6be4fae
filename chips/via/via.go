// Package via implements the MOS Technology 6522 Versatile Interface
// Adapter: two I/O ports, two 16 bit timers (T1 one-shot or continuous, T2
// one-shot), the shift register as a plain read/write byte, and the IFR/IER
// interrupt registers with their bit-7-master convention. ACR's PB7-toggle
// bit is not modeled, and with ACR's pulse-count bit set T2 does not count.
// PCR is stored and read back but drives no handshake lines, and the shift
// register does not shift.
package via

import (
	"fmt"

	"github.com/jmchacon/sys65/io"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

var _ memory.Bank = (*Chip)(nil)
var _ irq.Sender = (*Chip)(nil)

// IFR/IER bit assignments.
const (
	ifCA2 = uint8(0x01)
	ifCA1 = uint8(0x02)
	ifSR  = uint8(0x04)
	ifCB2 = uint8(0x08)
	ifCB1 = uint8(0x10)
	ifT2  = uint8(0x20)
	ifT1  = uint8(0x40)
	ifMaster = uint8(0x80)
)

// ACR bit assignments relevant to timer behavior.
const (
	acrT1Continuous = uint8(0x40)
	acrT1PB7        = uint8(0x80)
	acrT2PulseCount = uint8(0x20)
)

// ChipDef defines a 6522 at construction time.
type ChipDef struct {
	PortA  io.PortIn8
	PortB  io.PortIn8
	Parent memory.Bank
	Debug  bool
}

// Chip is a complete MOS 6522 VIA.
type Chip struct {
	ddrA, ddrB uint8
	orA, orB   uint8
	inA, inB   io.PortIn8

	t1Counter, t1Latch uint16
	t1Active           bool
	t2Counter, t2Latch uint16
	t2Active           bool

	sr  uint8
	acr uint8
	pcr uint8
	ifr uint8
	ier uint8

	lastPoll uint64

	parent     memory.Bank
	databusVal uint8
	debug      bool
}

// Init constructs and powers on a 6522.
func Init(d *ChipDef) (*Chip, error) {
	c := &Chip{inA: d.PortA, inB: d.PortB, parent: d.Parent, debug: d.Debug}
	c.PowerOn()
	return c, nil
}

// PowerOn implements memory.Bank.
func (c *Chip) PowerOn() {
	inA, inB, parent, debug := c.inA, c.inB, c.parent, c.debug
	*c = Chip{inA: inA, inB: inB, parent: parent, debug: debug}
	c.t1Counter = 0xFFFF
	c.t2Counter = 0xFFFF
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

// Read implements memory.Bank over the 16 register 6522 address space.
func (c *Chip) Read(addr uint16) uint8 {
	var val uint8
	switch addr & 0x0F {
	case 0x0:
		val = c.readB()
		c.ifr &^= (ifCB1 | ifCB2)
	case 0x1:
		val = c.readA()
		c.ifr &^= (ifCA1 | ifCA2)
	case 0x2:
		val = c.ddrB
	case 0x3:
		val = c.ddrA
	case 0x4:
		val = uint8(c.t1Counter)
		c.ifr &^= ifT1
	case 0x5:
		val = uint8(c.t1Counter >> 8)
	case 0x6:
		val = uint8(c.t1Latch)
	case 0x7:
		val = uint8(c.t1Latch >> 8)
	case 0x8:
		val = uint8(c.t2Counter)
		c.ifr &^= ifT2
	case 0x9:
		val = uint8(c.t2Counter >> 8)
	case 0xA:
		val = c.sr
		c.ifr &^= ifSR
	case 0xB:
		val = c.acr
	case 0xC:
		val = c.pcr
	case 0xD:
		val = c.ifr
		if c.ifr&(c.ier&^ifMaster) != 0 {
			val |= ifMaster
		}
	case 0xE:
		val = c.ier | ifMaster
	case 0xF:
		val = c.readA() // No-handshake alias: doesn't clear CA1/CA2 flags.
	}
	c.databusVal = val
	return val
}

// Write implements memory.Bank.
func (c *Chip) Write(addr uint16, val uint8) {
	c.databusVal = val
	switch addr & 0x0F {
	case 0x0:
		c.orB = val
		c.ifr &^= (ifCB1 | ifCB2)
	case 0x1:
		c.orA = val
		c.ifr &^= (ifCA1 | ifCA2)
	case 0x2:
		c.ddrB = val
	case 0x3:
		c.ddrA = val
	case 0x4:
		c.t1Latch = (c.t1Latch & 0xFF00) | uint16(val)
	case 0x5:
		c.t1Latch = (c.t1Latch & 0x00FF) | (uint16(val) << 8)
		c.t1Counter = c.t1Latch
		c.t1Active = true
		c.ifr &^= ifT1
	case 0x6:
		c.t1Latch = (c.t1Latch & 0xFF00) | uint16(val)
	case 0x7:
		c.t1Latch = (c.t1Latch & 0x00FF) | (uint16(val) << 8)
		c.ifr &^= ifT1
	case 0x8:
		c.t2Latch = (c.t2Latch & 0xFF00) | uint16(val)
	case 0x9:
		c.t2Latch = (c.t2Latch & 0x00FF) | (uint16(val) << 8)
		c.t2Counter = c.t2Latch
		c.t2Active = true
		c.ifr &^= ifT2
	case 0xA:
		c.sr = val
		c.ifr &^= ifSR
	case 0xB:
		c.acr = val
	case 0xC:
		c.pcr = val
	case 0xD:
		c.ifr &^= (val &^ ifMaster)
	case 0xE:
		if val&ifMaster != 0 {
			c.ier |= val &^ ifMaster
		} else {
			c.ier &^= val
		}
	case 0xF:
		c.orA = val // No-handshake alias.
	}
}

// Poll implements memory.Bank, advancing T1/T2 by the Φ2 cycles elapsed
// since the previous Poll. The returned level reports only interrupt
// conditions that newly arose during this call (an edge, not the raw IFR
// level): IFR itself stays latched for software to read/clear as usual,
// but a timer that already fired and was never acknowledged must not
// re-trigger IRQ servicing on every subsequent poll, and a continuous
// timer's later reloads must still be able to trigger it again.
func (c *Chip) Poll(cycles uint64) irq.Level {
	elapsed := cycles - c.lastPoll
	c.lastPoll = cycles
	var newFlags uint8
	for i := uint64(0); i < elapsed; i++ {
		newFlags |= c.tickTimers()
	}
	if newFlags&c.ier&^ifMaster != 0 {
		return irq.IRQ
	}
	return irq.None
}

// Raised implements irq.Sender, reporting the live IRQ line level (any
// latched, enabled IFR bit), as opposed to Poll's edge-only report: letting
// a system factory wire this VIA directly to a CPU's Irq/Nmi line in
// addition to the aggregate bus-root Poll every system already performs.
func (c *Chip) Raised() bool {
	return c.ifr&(c.ier&^ifMaster) != 0
}

// tickTimers advances T1/T2 by one Φ2 cycle and returns the IFR bits that
// newly became set this cycle (as opposed to those already latched from an
// earlier, unacknowledged event).
func (c *Chip) tickTimers() uint8 {
	var newFlags uint8
	if c.t1Active {
		c.t1Counter--
		if c.t1Counter == 0 {
			c.ifr |= ifT1
			newFlags |= ifT1
			if c.acr&acrT1Continuous != 0 {
				c.t1Counter = c.t1Latch
			} else {
				c.t1Active = false
			}
		}
	}
	if c.t2Active && c.acr&acrT2PulseCount == 0 {
		c.t2Counter--
		if c.t2Counter == 0 {
			c.ifr |= ifT2
			newFlags |= ifT2
			c.t2Active = false
		}
	}
	return newFlags
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
	return fmt.Sprintf("VIA t1=%.4X/%.4X t2=%.4X/%.4X ifr=%.2X ier=%.2X", c.t1Counter, c.t1Latch, c.t2Counter, c.t2Latch, c.ifr, c.ier)
}
