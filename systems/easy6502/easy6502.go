// Package easy6502 implements the memory map taught by Nick Morgan's "Easy
// 6502" tutorial: flat 64K RAM, a 32x32 indexed-color framebuffer at
// 0x0200-0x05FF, and a hardware random byte at 0x00FE. 0x00FF reads and
// writes as ordinary RAM: no key input is stored there, and Def.Keys is
// kept but never read. It is the simplest system this module builds and
// exists mainly as a minimal-moving-parts target for CPU conformance
// tests, grounded in the teacher's atari2600 system-composition shape but
// with a single flat RAM block instead of a cartridge/TIA/RIOT map.
package easy6502

import (
	"time"

	"github.com/jmchacon/sys65/cpu"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/memory"
	"github.com/jmchacon/sys65/platform"
	"github.com/jmchacon/sys65/system"
)

// clockHz is the tutorial's nominal, unspecified clock; 1MHz matches the
// original NMOS 6502's most common datasheet speed grade and is what every
// "cycles per second" discussion of the tutorial assumes.
const clockHz = 1_000_000

const (
	frameWidth  = 32
	frameHeight = 32
	randomAddr  = uint16(0x00FE)
	lastKeyAddr = uint16(0x00FF)
	screenBase  = uint16(0x0200)
)

var _ system.Handle = (*Handle)(nil)

// randKey wraps memory.Block so reads of 0x00FE return a fresh random byte
// every time (the tutorial's documented hardware-random-number contract)
// while writes behave as ordinary RAM.
type randKey struct {
	ram  *memory.Block
	rnd  platform.Random
	keys *keyboard.State[keyboard.Virtual]
}

func (r *randKey) Read(addr uint16) uint8 {
	switch addr {
	case randomAddr:
		return uint8(r.rnd.Intn(256))
	case lastKeyAddr:
		return r.ram.Read(addr)
	default:
		return r.ram.Read(addr)
	}
}
func (r *randKey) Write(addr uint16, val uint8) { r.ram.Write(addr, val) }
func (r *randKey) PowerOn()                     { r.ram.PowerOn() }
func (r *randKey) Reset()                       { r.ram.Reset() }
func (r *randKey) Poll(c uint64) irq.Level      { return r.ram.Poll(c) }
func (r *randKey) Parent() memory.Bank          { return r.ram.Parent() }
func (r *randKey) DatabusVal() uint8            { return r.ram.DatabusVal() }

// Handle is a running Easy 6502 machine.
type Handle struct {
	chip *cpu.Chip
	ram  *randKey
}

// Def configures a new machine.
type Def struct {
	// ROM is loaded at 0x0600, the tutorial assembler's default origin.
	ROM      []byte
	Provider platform.Provider
	Keys     *keyboard.State[keyboard.Virtual]
}

// Init builds and powers on an Easy 6502 machine.
func Init(d *Def) (*Handle, error) {
	block, err := memory.NewBlock(&memory.BlockDef{Size: 0x10000})
	if err != nil {
		return nil, err
	}
	rk := &randKey{ram: block, rnd: d.Provider.Rand(), keys: d.Keys}

	chip, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS, Mem: rk})
	if err != nil {
		return nil, err
	}

	// cpu.Init's power-on randomizes RAM, so the program and reset vector
	// are written afterwards and a Reset loads PC from the vector.
	if len(d.ROM) > 0 {
		for i, b := range d.ROM {
			block.Write(0x0600+uint16(i), b)
		}
		block.Write(0xFFFC, 0x00)
		block.Write(0xFFFD, 0x06)
		chip.Reset()
	}
	return &Handle{chip: chip, ram: rk}, nil
}

// Tick implements system.Handle.
func (h *Handle) Tick() (time.Duration, error) {
	cycles, err := h.chip.Tick()
	return time.Duration(cycles) * time.Second / clockHz, err
}

// Reset implements system.Handle.
func (h *Handle) Reset() { h.chip.Reset() }

// AttachTrace implements system.Handle.
func (h *Handle) AttachTrace(fn func(cpu.TraceEntry)) { h.chip.AttachTrace(fn) }

// FrameSize implements system.Handle.
func (h *Handle) FrameSize() (int, int) { return frameWidth, frameHeight }

// Render implements system.Handle, copying the 32x32 screen memory
// verbatim: the tutorial's screen codes are already indices into its fixed
// 16-color palette.
func (h *Handle) Render(buf []byte) {
	for i := 0; i < frameWidth*frameHeight && i < len(buf); i++ {
		buf[i] = h.ram.Read(screenBase + uint16(i))
	}
}
