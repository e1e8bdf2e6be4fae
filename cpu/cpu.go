// Package cpu defines the 6502/65C02 architecture and provides the methods
// needed to run the CPU and interface with it for emulation. Unlike the
// teacher's cycle-stepped core (one Tick() per Φ2 pulse, committed via a
// paired TickDone()), this Chip executes one full instruction per Tick()
// call and reports the cycles it consumed, matching the instruction-level
// tick contract every system in this module is built around.
package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

// CPUType is an enumeration of the valid CPU types.
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS                         // Basic NMOS 6502 including undocumented opcodes.
	CPU_NMOS_RICOH                   // Ricoh variant (NES): identical to NMOS except BCD mode is unimplemented (moot here; decimal is never implemented).
	CPU_NMOS_6510                    // NMOS 6510 variant (C64): decodes as NMOS; the processor I/O port at 0x0000/0x0001 is supplied by the system's memory map.
	CPU_CMOS                         // 65C02 CMOS version: illegal opcodes become defined instructions/NOPs.
	CPU_MAX                          // End of CPU enumerations.
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always reads 1.
	P_B         = uint8(0x10) // Only set during BRK/PHP. Cleared on hardware IRQ/NMI entry.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)

	stackBase = uint16(0x0100)
)

// TraceEntry is emitted to an attached trace handler after every opcode
// fetch, before the opcode executes. Tracing must not affect behavior.
type TraceEntry struct {
	PC uint16
	Op uint8
}

// Chip holds the full architectural and implementation state of a 65xx CPU.
type Chip struct {
	A  uint8  // Accumulator register.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	S  uint8  // Stack pointer (8 bit offset into 0x0100-0x01FF).
	P  uint8  // Status register.
	PC uint16 // Program counter.

	cpuType CPUType
	mem     memory.Bank
	irqLine irq.Sender
	nmiLine irq.Sender

	cycles uint64 // Running Φ2 cycle count since power on.
	lastOp uint8  // Most recently fetched opcode (used to report HaltOpcode).

	halted     bool
	haltOpcode uint8

	pendingNMI bool // Latched from the previous instruction's poll; NMI is edge-triggered.
	lastNMI    bool // Nmi line level seen at the previous poll, for edge detection.
	pendingIRQ bool // Recomputed from the bus's poll result and the I flag each tick; IRQ is level-triggered.

	trace func(TraceEntry)
}

// ChipDef defines a 65xx processor at construction time.
type ChipDef struct {
	// Cpu is the distinct cpu type for this implementation.
	Cpu CPUType
	// Mem is the bus root this CPU reads/writes/polls through.
	Mem memory.Bank
	// Irq is an optional IRQ source checked after each instruction.
	Irq irq.Sender
	// Nmi is an optional NMI source checked after each instruction (edge
	// triggered: one NMI per low-to-high transition of Raised()).
	Nmi irq.Sender
}

// Init creates a new 65xx CPU of the requested type and returns it powered
// on (registers randomized per real hardware, PC loaded from the reset
// vector).
func Init(d *ChipDef) (*Chip, error) {
	if d.Cpu <= CPU_UNIMPLEMENTED || d.Cpu >= CPU_MAX {
		return nil, InvalidCPUState{Reason: fmt.Sprintf("CPU type %d is invalid", d.Cpu)}
	}
	c := &Chip{
		cpuType: d.Cpu,
		mem:     d.Mem,
		irqLine: d.Irq,
		nmiLine: d.Nmi,
	}
	c.PowerOn()
	return c, nil
}

// AttachTrace installs a handler invoked after every opcode fetch with the
// pre-fetch PC and opcode. A nil handler disables tracing.
func (c *Chip) AttachTrace(fn func(TraceEntry)) {
	c.trace = fn
}

// CycleCount returns the running Φ2 cycle count since power on.
func (c *Chip) CycleCount() uint64 {
	return c.cycles
}

// PowerOn resets the CPU to power-on state: registers are randomized (decimal
// flag randomized too on NMOS, which is what real silicon does), then a reset
// is run to load PC from the reset vector.
func (c *Chip) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	flags := P_S1
	if c.cpuType == CPU_NMOS || c.cpuType == CPU_NMOS_6510 {
		if rand.Float32() > 0.5 {
			flags |= P_DECIMAL
		}
	}
	c.A = uint8(rand.Intn(256))
	c.X = uint8(rand.Intn(256))
	c.Y = uint8(rand.Intn(256))
	c.S = uint8(rand.Intn(256))
	c.P = flags
	c.mem.PowerOn()
	c.Reset()
}

// Reset reloads PC from the reset vector and reinitializes transient
// execution state, matching spec.md §4.1 ("reload PC from the reset vector,
// reinitialize registers"). The stack pointer is moved down 3 as real
// hardware does (as if PC/P had been pushed), interrupts are disabled, and
// the halt state is cleared.
func (c *Chip) Reset() {
	c.S -= 3
	c.P |= P_INTERRUPT
	c.halted = false
	c.haltOpcode = 0x00
	c.pendingNMI = false
	c.pendingIRQ = false
	lo := c.mem.Read(RESET_VECTOR)
	hi := c.mem.Read(RESET_VECTOR + 1)
	c.PC = (uint16(hi) << 8) | uint16(lo)
	c.mem.Reset()
}

// Tick executes exactly one instruction (or, if an interrupt is pending from
// the previous instruction's bus poll, services that interrupt instead) and
// returns the number of Φ2 cycles consumed. An error is returned if the CPU
// is halted (NMOS STP/KIL/JAM); the Chip stays halted until Reset.
func (c *Chip) Tick() (uint64, error) {
	if c.halted {
		return 0, HaltOpcode{Opcode: c.haltOpcode, PC: c.PC}
	}

	var (
		cycles uint8
		err    error
	)
	switch {
	case c.pendingNMI:
		c.pendingNMI = false
		c.pendingIRQ = false
		cycles, err = c.serviceInterrupt(NMI_VECTOR)
	case c.pendingIRQ && c.P&P_INTERRUPT == 0:
		c.pendingIRQ = false
		cycles, err = c.serviceInterrupt(IRQ_VECTOR)
	default:
		c.pendingIRQ = false
		cycles, err = c.step()
	}
	if err != nil {
		c.halted = true
		c.haltOpcode = c.lastOp
		return uint64(cycles), err
	}

	c.cycles += uint64(cycles)

	level := c.mem.Poll(c.cycles)
	if c.nmiEdge() {
		c.pendingNMI = true
	}
	if c.irqLine != nil && c.irqLine.Raised() {
		c.pendingIRQ = true
	}
	if level == irq.NMI {
		c.pendingNMI = true
	} else if level == irq.IRQ {
		c.pendingIRQ = true
	}

	return uint64(cycles), nil
}

// nmiEdge reports whether the externally attached NMI sender (if any) went
// from not raised to raised since the previous poll, so a line held raised
// yields a single NMI.
func (c *Chip) nmiEdge() bool {
	cur := c.nmiLine != nil && c.nmiLine.Raised()
	edge := cur && !c.lastNMI
	c.lastNMI = cur
	return edge
}

// step fetches, decodes and executes one instruction at PC.
func (c *Chip) step() (uint8, error) {
	op := c.mem.Read(c.PC)
	c.lastOp = op
	if c.trace != nil {
		c.trace(TraceEntry{PC: c.PC, Op: op})
	}
	c.PC++

	tbl := nmosTable
	if c.cpuType == CPU_CMOS {
		tbl = cmosTable
	}
	entry := tbl[op]
	if entry.fn == nil {
		return 0, InvalidCPUState{Reason: fmt.Sprintf("opcode 0x%.2X has no decode entry", op)}
	}
	return entry.fn(c, entry.mode, entry.cycles)
}

// serviceInterrupt pushes PC then P (B=0) per spec.md §4.1, sets I, and
// loads PC from addr. Takes the datasheet-nominal 7 cycles.
func (c *Chip) serviceInterrupt(addr uint16) (uint8, error) {
	c.push16(c.PC)
	c.push(c.P&^P_B | P_S1)
	c.P |= P_INTERRUPT
	lo := c.mem.Read(addr)
	hi := c.mem.Read(addr + 1)
	c.PC = (uint16(hi) << 8) | uint16(lo)
	return 7, nil
}

// push/pop implement the hardwired 0x0100-0x01FF stack page; S wraps within
// the page on over/underflow.
func (c *Chip) push(val uint8) {
	c.mem.Write(stackBase+uint16(c.S), val)
	c.S--
}

func (c *Chip) pop() uint8 {
	c.S++
	return c.mem.Read(stackBase + uint16(c.S))
}

func (c *Chip) push16(val uint16) {
	c.push(uint8(val >> 8))
	c.push(uint8(val))
}

func (c *Chip) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return (uint16(hi) << 8) | uint16(lo)
}
