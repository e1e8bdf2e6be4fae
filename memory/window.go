package memory

import "github.com/jmchacon/sys65/irq"

// Window re-bases accesses by base before forwarding to target, letting a
// single shared Bank (almost always the system's main RAM) act as one
// branch of a Banked device even though Branch/Banked always deliver
// already-rebased (0-relative) addresses to their children. Without this,
// a Banked fallback-to-RAM child would read and write the wrong region of
// the underlying RAM. PowerOn/Reset/Poll are no-ops for the same reason
// Mirror's are: target is powered/reset/polled once, through its own
// primary mapping, not once per Window onto it.
type Window struct {
	base   uint16
	target Bank
	parent Bank
}

// NewWindow constructs a Window that re-bases accesses onto target by
// adding base back before every Read/Write.
func NewWindow(base uint16, target Bank, parent Bank) *Window {
	return &Window{base: base, target: target, parent: parent}
}

// Read implements Bank.
func (w *Window) Read(addr uint16) uint8 { return w.target.Read(w.base + addr) }

// Write implements Bank.
func (w *Window) Write(addr uint16, val uint8) { w.target.Write(w.base+addr, val) }

// PowerOn is a no-op; see type doc.
func (w *Window) PowerOn() {}

// Reset is a no-op; see type doc.
func (w *Window) Reset() {}

// Poll is a no-op; see type doc.
func (w *Window) Poll(uint64) irq.Level { return irq.None }

// Parent implements Bank.
func (w *Window) Parent() Bank { return w.parent }

// DatabusVal implements Bank.
func (w *Window) DatabusVal() uint8 { return w.target.DatabusVal() }
