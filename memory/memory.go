// Package memory defines the basic interfaces for working with a 6502
// family memory map and the composite devices (block, branch, banked,
// null, mirror, logging) used to build one. Since each emulated machine has
// its own specific mapping (including shadowed regions and memory-mapped
// chips) the map itself is always assembled by a systems/ factory out of
// these pieces rather than hardcoded here.
package memory

import (
	"github.com/jmchacon/sys65/irq"
)

// Bank is the closed capability set every memory-mapped device implements,
// whether a leaf (Block) or a composite (Branch, Banked, Mirror...) or a
// peripheral chip's register window.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. Unmapped or read-only
	// addresses silently drop the write.
	Write(addr uint16, val uint8)
	// PowerOn performs construction-time power-on initialization. This is
	// implementation specific as to whether it's randomized or preset to
	// all zeros; called exactly once, at system build time.
	PowerOn()
	// Reset performs a runtime reset: volatile state is cleared/reinitialized
	// but persistent (ROM) contents survive. Propagates depth-first to any
	// children.
	Reset()
	// Poll is called once per CPU instruction with the CPU's running cycle
	// counter and walks depth-first, returning the highest-precedence
	// interrupt (NMI > IRQ > None) observed across every mapped device.
	Poll(cycles uint64) irq.Level
	// Parent holds a reference (if non-nil) to the next level memory
	// controller. A chain of these can be walked to find the outermost one
	// and query items such as databus state (from the last value to cross
	// it); some undocumented opcodes depend on transient databus state.
	Parent() Bank
	// DatabusVal returns the last value seen to cross the data bus through
	// this device.
	DatabusVal() uint8
}

// LatestDatabusVal hunts up a chain of Banks until it finds the outermost
// one and returns the DatabusVal from it.
func LatestDatabusVal(b Bank) uint8 {
	if b.Parent() != nil {
		return LatestDatabusVal(b.Parent())
	}
	return b.DatabusVal()
}
