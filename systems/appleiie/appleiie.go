// Package appleiie builds the Apple IIe's CPU/memory/chip composition: a
// plain NMOS 6502, 48K of main RAM, a soft-switch I/O page (keyboard data
// and strobe, 80-column/HiRes/etc. mode flip-flops, language-card bank
// control), empty peripheral-card slot space, and Applesoft/monitor ROM.
// Unlike every other system in this module the Apple IIe carries no
// PIA/VIA/CIA: its I/O is addresses whose low bits themselves are the
// latch, following the memory map in the teacher lineage's aiie.rs layout
// and this module's own Branch composite plus a small dedicated
// soft-switch device in place of a peripheral chip.
package appleiie

import (
	"time"

	"github.com/jmchacon/sys65/cpu"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/memory"
	"github.com/jmchacon/sys65/platform"
	"github.com/jmchacon/sys65/system"
)

const clockHz = 1_023_000

var _ system.Handle = (*Handle)(nil)

// Def configures a new Apple IIe.
type Def struct {
	ApplesoftROM, MonitorROM []byte
	Provider                 platform.Provider
	Keys                     *keyboard.State[keyboard.Virtual]
}

// softSwitches implements the 0xC000-0xC0FF I/O page: most addresses in
// this range are soft switches, where the access itself (not the data bus
// value) toggles a latch — reading 0xC050 and reading 0xC051 set the same
// flip-flop (text mode) to its two states, for instance, rather than the
// returned byte meaning anything.
type softSwitches struct {
	keys *keyboard.State[keyboard.Virtual]

	lastKey   uint8
	strobed   bool
	textMode  bool
	hiRes     bool
	mixed     bool
	page2     bool
	langWrite bool
	langRead  bool

	parent     memory.Bank
	databusVal uint8
}

func newSoftSwitches(keys *keyboard.State[keyboard.Virtual], parent memory.Bank) *softSwitches {
	return &softSwitches{keys: keys, parent: parent}
}

func (s *softSwitches) Read(addr uint16) uint8 {
	var val uint8
	switch {
	case addr == 0xC000:
		val = s.lastKey
		if s.strobed {
			val |= 0x80
		}
	case addr == 0xC010:
		s.strobed = false
		val = s.lastKey
	case addr >= 0xC050 && addr <= 0xC05F:
		s.flip(addr)
	case addr >= 0xC080 && addr <= 0xC08F:
		s.langSwitch(addr)
	}
	s.databusVal = val
	return val
}

func (s *softSwitches) Write(addr uint16, val uint8) {
	s.databusVal = val
	switch {
	case addr >= 0xC050 && addr <= 0xC05F:
		s.flip(addr)
	case addr >= 0xC080 && addr <= 0xC08F:
		s.langSwitch(addr)
	}
}

// flip toggles the mode flip-flop the even/odd pair of addresses at addr
// address, per the Apple IIe's "access sets state from address parity"
// soft-switch convention.
func (s *softSwitches) flip(addr uint16) {
	on := addr&1 != 0
	switch (addr - 0xC050) / 2 {
	case 0:
		s.textMode = on
	case 1:
		s.mixed = on
	case 2:
		s.page2 = on
	case 3:
		s.hiRes = on
	}
}

func (s *softSwitches) langSwitch(addr uint16) {
	bits := addr & 0x03
	s.langRead = bits == 0x03 || bits == 0x00
	s.langWrite = bits == 0x01 || bits == 0x02
}

func (s *softSwitches) PowerOn()              {}
func (s *softSwitches) Reset()                {}
func (s *softSwitches) Poll(uint64) irq.Level { return irq.None }
func (s *softSwitches) Parent() memory.Bank   { return s.parent }
func (s *softSwitches) DatabusVal() uint8     { return s.databusVal }

// Handle is a running Apple IIe.
type Handle struct {
	chip *cpu.Chip
	ram  *memory.Block
	io   *softSwitches
}

// Init builds and powers on an Apple IIe.
func Init(d *Def) (*Handle, error) {
	ram, err := memory.NewBlock(&memory.BlockDef{Size: 0xC000})
	if err != nil {
		return nil, err
	}
	applesoft, err := memory.NewBlock(&memory.BlockDef{Size: 0x2800, Persistent: true, ROM: d.ApplesoftROM})
	if err != nil {
		return nil, err
	}
	monitor, err := memory.NewBlock(&memory.BlockDef{Size: 0x0800, Persistent: true, ROM: d.MonitorROM})
	if err != nil {
		return nil, err
	}
	slots, err := memory.NewBlock(&memory.BlockDef{Size: 0x0F00})
	if err != nil {
		return nil, err
	}

	keys := d.Keys
	if keys == nil {
		keys = keyboard.NewState[keyboard.Virtual]()
	}

	branch := memory.NewBranch(nil)
	root := memory.Bank(branch)
	io := newSoftSwitches(keys, root)

	branch.Map(0x0000, ram)
	branch.Map(0xC000, io)
	branch.Map(0xC100, slots)
	branch.Map(0xD000, applesoft)
	branch.Map(0xF800, monitor)

	chip, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS, Mem: root})
	if err != nil {
		return nil, err
	}
	return &Handle{chip: chip, ram: ram, io: io}, nil
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

// FrameSize implements system.Handle: 40x24 text mode, the always-available
// baseline this module renders (HiRes/80-column composition is a known
// extension left unimplemented).
func (h *Handle) FrameSize() (int, int) { return 40 * 7, 24 * 8 }

// Render implements system.Handle, scanning out 0x0400-0x07FF (page 1 text
// screen) using the Apple IIe's well-known interleaved row order.
func (h *Handle) Render(buf []byte) {
	const base = 0x0400
	w, _ := h.FrameSize()
	rowOffsets := [24]uint16{
		0x000, 0x080, 0x100, 0x180, 0x200, 0x280, 0x300, 0x380,
		0x028, 0x0A8, 0x128, 0x1A8, 0x228, 0x2A8, 0x328, 0x3A8,
		0x050, 0x0D0, 0x150, 0x1D0, 0x250, 0x2D0, 0x350, 0x3D0,
	}
	for row := 0; row < 24; row++ {
		for col := 0; col < 40; col++ {
			code := h.ram.Read(base + rowOffsets[row] + uint16(col))
			for gx := 0; gx < 7; gx++ {
				idx := row*8*w + col*7 + gx
				if idx >= len(buf) {
					continue
				}
				buf[idx] = code & 0x3F
			}
		}
	}
}
