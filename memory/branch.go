package memory

import (
	"sort"

	"github.com/jmchacon/sys65/irq"
)

// entry is one routed child of a Branch.
type entry struct {
	base  uint16
	child Bank
}

// Branch maps a sorted list of (starting-address, child) pairs. Lookup
// selects the child with the largest starting-address <= the requested
// address and re-issues the request with `address - starting-address`.
// Unmapped reads return 0; unmapped writes are silently dropped. This is the
// device every system factory uses as its bus root (§4.2).
type Branch struct {
	entries    []entry
	parent     Bank
	databusVal uint8
}

// NewBranch constructs an empty Branch. Children are added with Map; the
// system factory adds them in any order and Map keeps the table sorted.
func NewBranch(parent Bank) *Branch {
	return &Branch{parent: parent}
}

// Map adds a child at base. Mapping a base that is already present replaces
// that entry's child; it does not panic.
func (br *Branch) Map(base uint16, child Bank) {
	for i, e := range br.entries {
		if e.base == base {
			br.entries[i].child = child
			return
		}
	}
	br.entries = append(br.entries, entry{base: base, child: child})
	sort.Slice(br.entries, func(i, j int) bool { return br.entries[i].base < br.entries[j].base })
}

// lookup returns the child mapped to addr (or nil if unmapped) along with
// the address rebased relative to that child's start.
func (br *Branch) lookup(addr uint16) (Bank, uint16) {
	// entries is kept sorted ascending by base; select the last entry whose
	// base is <= addr.
	idx := -1
	for i, e := range br.entries {
		if e.base > addr {
			break
		}
		idx = i
	}
	if idx < 0 {
		return nil, 0
	}
	e := br.entries[idx]
	return e.child, addr - e.base
}

// Read implements Bank.
func (br *Branch) Read(addr uint16) uint8 {
	child, rebased := br.lookup(addr)
	var val uint8
	if child != nil {
		val = child.Read(rebased)
	}
	br.databusVal = val
	return val
}

// Write implements Bank.
func (br *Branch) Write(addr uint16, val uint8) {
	br.databusVal = val
	child, rebased := br.lookup(addr)
	if child != nil {
		child.Write(rebased, val)
	}
}

// PowerOn implements Bank, fanning out depth-first to every mapped child.
func (br *Branch) PowerOn() {
	for _, e := range br.entries {
		e.child.PowerOn()
	}
}

// Reset implements Bank, fanning out depth-first to every mapped child
// exactly once.
func (br *Branch) Reset() {
	for _, e := range br.entries {
		e.child.Reset()
	}
}

// Poll implements Bank, walking every child and folding results under
// NMI > IRQ > None.
func (br *Branch) Poll(cycles uint64) irq.Level {
	level := irq.None
	for _, e := range br.entries {
		level = irq.Highest(level, e.child.Poll(cycles))
	}
	return level
}

// Parent implements Bank.
func (br *Branch) Parent() Bank {
	return br.parent
}

// DatabusVal implements Bank.
func (br *Branch) DatabusVal() uint8 {
	return br.databusVal
}
