package memory

import (
	"log"

	"github.com/jmchacon/sys65/irq"
)

// Null is a no-op memory device: reads always return 0, writes are
// dropped. Used to explicitly document an unmapped region in a system's
// memory map (as opposed to simply leaving a gap, which Branch also treats
// as returning 0/dropping writes) and, with Debug set, to log accesses that
// shouldn't normally happen — handy while bringing up a new system's memory
// map.
type Null struct {
	Debug      bool
	name       string
	parent     Bank
	databusVal uint8
}

// NewNull constructs a Null device. name is used only in debug log lines.
func NewNull(name string, debug bool, parent Bank) *Null {
	return &Null{Debug: debug, name: name, parent: parent}
}

// Read implements Bank.
func (n *Null) Read(addr uint16) uint8 {
	if n.Debug {
		log.Printf("null(%s): read @ %.4X", n.name, addr)
	}
	n.databusVal = 0x00
	return 0x00
}

// Write implements Bank.
func (n *Null) Write(addr uint16, val uint8) {
	if n.Debug {
		log.Printf("null(%s): write %.2X @ %.4X dropped", n.name, val, addr)
	}
	n.databusVal = val
}

// PowerOn implements Bank.
func (n *Null) PowerOn() {}

// Reset implements Bank.
func (n *Null) Reset() {}

// Poll implements Bank.
func (n *Null) Poll(uint64) irq.Level { return irq.None }

// Parent implements Bank.
func (n *Null) Parent() Bank { return n.parent }

// DatabusVal implements Bank.
func (n *Null) DatabusVal() uint8 { return n.databusVal }
