package memory

import "github.com/jmchacon/sys65/irq"

// Mirror is a thin Bank wrapper that shares a single underlying Bank across
// two or more Branch map entries (e.g. the PET's zero page mirrored across
// several windows, or a VIC-II register window and a CPU-side window over
// the same chip). Interior mutability belongs entirely to the wrapped
// device; Mirror itself holds nothing but the shared reference, which is
// exactly the "shared reference wrapper" spec.md §2 calls for.
type Mirror struct {
	target Bank
	parent Bank
}

// NewMirror wraps target so it can be mapped at additional Branch bases
// without duplicating state. Map target itself at its primary base, then map
// a Mirror of it at each additional base.
func NewMirror(target Bank, parent Bank) *Mirror {
	return &Mirror{target: target, parent: parent}
}

// Read implements Bank by delegating to the shared target.
func (m *Mirror) Read(addr uint16) uint8 { return m.target.Read(addr) }

// Write implements Bank by delegating to the shared target.
func (m *Mirror) Write(addr uint16, val uint8) { m.target.Write(addr, val) }

// PowerOn is a no-op: the shared target is powered on once, via its primary
// mapping, not once per mirror.
func (m *Mirror) PowerOn() {}

// Reset is a no-op for the same reason as PowerOn.
func (m *Mirror) Reset() {}

// Poll is a no-op for the same reason: polling the target once (via its
// primary mapping) is sufficient, polling it again through every mirror
// would double-count interrupts with no additional information.
func (m *Mirror) Poll(uint64) irq.Level { return irq.None }

// Parent implements Bank.
func (m *Mirror) Parent() Bank { return m.parent }

// DatabusVal implements Bank, reflecting the shared target's databus value.
func (m *Mirror) DatabusVal() uint8 { return m.target.DatabusVal() }
