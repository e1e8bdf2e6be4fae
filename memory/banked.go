package memory

import "github.com/jmchacon/sys65/irq"

// Selector is the shared cell a Banked memory's children use to decide
// which one is active. It is written by whatever peripheral owns bank
// selection (e.g. a cartridge mapper's control register) and read by the
// Banked device on every access. Modeled as a small capability object per
// the design notes on shared interior mutability (spec.md §9): one
// component owns the Selector value, the other gets this read/write handle.
type Selector struct {
	idx int
}

// Get returns the currently selected bank index.
func (s *Selector) Get() int { return s.idx }

// Set updates the currently selected bank index.
func (s *Selector) Set(idx int) { s.idx = idx }

// Banked multiplexes N child Banks, exposing whichever one the shared
// Selector currently names for both reads and writes. Reset and Poll fan out
// to every child regardless of which is selected, since real bank-switch
// hardware doesn't reset/power-cycle the inactive banks independently.
type Banked struct {
	children []Bank
	sel      *Selector
	parent   Bank
	databusVal uint8
}

// NewBanked constructs a Banked device over children, selected by sel.
func NewBanked(children []Bank, sel *Selector, parent Bank) *Banked {
	return &Banked{children: children, sel: sel, parent: parent}
}

func (b *Banked) active() Bank {
	idx := b.sel.Get()
	if idx < 0 || idx >= len(b.children) {
		return nil
	}
	return b.children[idx]
}

// Read implements Bank.
func (b *Banked) Read(addr uint16) uint8 {
	var val uint8
	if c := b.active(); c != nil {
		val = c.Read(addr)
	}
	b.databusVal = val
	return val
}

// Write implements Bank.
func (b *Banked) Write(addr uint16, val uint8) {
	b.databusVal = val
	if c := b.active(); c != nil {
		c.Write(addr, val)
	}
}

// PowerOn implements Bank, powering on every child.
func (b *Banked) PowerOn() {
	for _, c := range b.children {
		c.PowerOn()
	}
}

// Reset implements Bank, resetting every child regardless of selection.
func (b *Banked) Reset() {
	for _, c := range b.children {
		c.Reset()
	}
}

// Poll implements Bank, folding every child's poll result together.
func (b *Banked) Poll(cycles uint64) irq.Level {
	level := irq.None
	for _, c := range b.children {
		level = irq.Highest(level, c.Poll(cycles))
	}
	return level
}

// Parent implements Bank.
func (b *Banked) Parent() Bank { return b.parent }

// DatabusVal implements Bank.
func (b *Banked) DatabusVal() uint8 { return b.databusVal }
