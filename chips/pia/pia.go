// Package pia implements the MOS Technology 6520 Peripheral Interface
// Adapter: two 8 bit bidirectional ports, each with a data direction
// register and a control register. Of the handshake lines only CA1/CB1 are
// modeled, as edge interrupts sampled from bit 7 of each port's input;
// CA2/CB2 are neither driven nor sampled. It follows the register-aliasing and interrupt-flag conventions the
// teacher's 6532 (pia6532) implements for its own, larger register set.
package pia

import (
	"fmt"

	"github.com/jmchacon/sys65/io"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

var _ memory.Bank = (*Chip)(nil)
var _ irq.Sender = (*Chip)(nil)

const (
	crDDRSelect = uint8(0x04) // CRx bit 2: 0 selects the DDR, 1 selects the output register at that port's data address.
	crIRQ1      = uint8(0x80) // CRx bit 7: CA1/CB1 interrupt flag (read-only, cleared by a read of the port).
	crIRQ2      = uint8(0x40) // CRx bit 6: CA2/CB2 interrupt flag (only meaningful in input mode).
	crIRQ1En    = uint8(0x01) // CRx bit 0: CA1/CB1 interrupt enable.
	crIRQ2En    = uint8(0x08) // CRx bit 3, when CRx bit 5 is 0: CA2/CB2 interrupt enable.
	cr1PosEdge  = uint8(0x02) // CRx bit 1: 1 selects positive edge for CA1/CB1.
)

// port holds one side's DDR/output-register/control-register triple plus
// the edge-detect state needed to raise its CAn/CBn interrupt flag.
type port struct {
	ddr     uint8
	or      uint8
	cr      uint8
	input   io.PortIn8
	heldIn  uint8
	lastC1  bool
}

// ChipDef defines a 6520 at construction time.
type ChipDef struct {
	PortA  io.PortIn8
	PortB  io.PortIn8
	Parent memory.Bank
	Debug  bool
}

// Chip is a complete MOS 6520 PIA.
type Chip struct {
	a, b       port
	parent     memory.Bank
	databusVal uint8
	debug      bool
}

// Init constructs and powers on a 6520.
func Init(d *ChipDef) (*Chip, error) {
	c := &Chip{parent: d.Parent, debug: d.Debug}
	c.a.input = d.PortA
	c.b.input = d.PortB
	c.PowerOn()
	return c, nil
}

// PowerOn implements memory.Bank.
func (c *Chip) PowerOn() {
	c.a = port{input: c.a.input}
	c.b = port{input: c.b.input}
}

// Reset implements memory.Bank: the 6520 RES pin clears every register.
func (c *Chip) Reset() {
	c.PowerOn()
}

// Read implements memory.Bank. addr is masked to 2 bits: {port A
// data/DDR, control A, port B data/DDR, control B}.
func (c *Chip) Read(addr uint16) uint8 {
	var val uint8
	switch addr & 0x03 {
	case 0:
		val = c.readPort(&c.a)
	case 1:
		val = c.a.cr
	case 2:
		val = c.readPort(&c.b)
	case 3:
		val = c.b.cr
	}
	c.databusVal = val
	return val
}

// Write implements memory.Bank.
func (c *Chip) Write(addr uint16, val uint8) {
	c.databusVal = val
	switch addr & 0x03 {
	case 0:
		c.writePort(&c.a, val)
	case 1:
		c.a.cr = (val & 0x3F) | (c.a.cr & (crIRQ1 | crIRQ2))
	case 2:
		c.writePort(&c.b, val)
	case 3:
		c.b.cr = (val & 0x3F) | (c.b.cr & (crIRQ1 | crIRQ2))
	}
}

func (c *Chip) readPort(p *port) uint8 {
	if p.cr&crDDRSelect == 0 {
		return p.ddr
	}
	// Reading the data register clears that port's CA1/CB1 interrupt flag.
	p.cr &^= crIRQ1
	if p.input == nil {
		return p.or & p.ddr
	}
	return (p.or & p.ddr) | (p.input.Input() &^ p.ddr)
}

func (c *Chip) writePort(p *port, val uint8) {
	if p.cr&crDDRSelect == 0 {
		p.ddr = val
		return
	}
	p.or = val
}

// Poll implements memory.Bank: samples the control-line inputs for an edge
// on CA1/CB1, updating each port's interrupt flag, and reports the
// aggregate IRQ level.
func (c *Chip) Poll(cycles uint64) irq.Level {
	c.pollEdge(&c.a)
	c.pollEdge(&c.b)
	if c.Raised() {
		return irq.IRQ
	}
	return irq.None
}

// Raised implements irq.Sender, letting a system factory wire this PIA
// directly to a CPU's Irq/Nmi line in addition to the aggregate bus-root
// Poll every system already performs.
func (c *Chip) Raised() bool {
	return (c.a.cr&crIRQ1 != 0 && c.a.cr&crIRQ1En != 0) || (c.b.cr&crIRQ1 != 0 && c.b.cr&crIRQ1En != 0)
}

func (c *Chip) pollEdge(p *port) {
	if p.input == nil {
		return
	}
	cur := p.input.Input()&0x80 != 0
	positive := p.cr&cr1PosEdge != 0
	if (positive && cur && !p.lastC1) || (!positive && !cur && p.lastC1) {
		p.cr |= crIRQ1
	}
	p.lastC1 = cur
}

// Parent implements memory.Bank.
func (c *Chip) Parent() memory.Bank { return c.parent }

// DatabusVal implements memory.Bank.
func (c *Chip) DatabusVal() uint8 { return c.databusVal }

// Debug reports internal state when constructed with Debug: true, following
// the teacher's debug-gated Debug() string convention.
func (c *Chip) Debug() string {
	if !c.debug {
		return ""
	}
	return fmt.Sprintf("PIA a={ddr:%.2X or:%.2X cr:%.2X} b={ddr:%.2X or:%.2X cr:%.2X}",
		c.a.ddr, c.a.or, c.a.cr, c.b.ddr, c.b.or, c.b.cr)
}
