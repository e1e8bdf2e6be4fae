package memory

import (
	"log"

	"github.com/jmchacon/sys65/irq"
)

// Logging wraps a Bank and logs every access through it with the standard
// log package; it has no flag to turn the logging off. Useful for wrapping one window of a system's memory map
// while chasing down a bring-up bug without instrumenting every chip.
type Logging struct {
	name   string
	target Bank
	parent Bank
}

// NewLogging wraps target, logging all reads/writes under name.
func NewLogging(name string, target Bank, parent Bank) *Logging {
	return &Logging{name: name, target: target, parent: parent}
}

// Read implements Bank.
func (l *Logging) Read(addr uint16) uint8 {
	val := l.target.Read(addr)
	log.Printf("%s: read %.2X @ %.4X", l.name, val, addr)
	return val
}

// Write implements Bank.
func (l *Logging) Write(addr uint16, val uint8) {
	log.Printf("%s: write %.2X @ %.4X", l.name, val, addr)
	l.target.Write(addr, val)
}

// PowerOn implements Bank.
func (l *Logging) PowerOn() { l.target.PowerOn() }

// Reset implements Bank.
func (l *Logging) Reset() { l.target.Reset() }

// Poll implements Bank.
func (l *Logging) Poll(cycles uint64) irq.Level { return l.target.Poll(cycles) }

// Parent implements Bank.
func (l *Logging) Parent() Bank { return l.parent }

// DatabusVal implements Bank.
func (l *Logging) DatabusVal() uint8 { return l.target.DatabusVal() }
