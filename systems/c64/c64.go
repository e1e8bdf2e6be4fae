// Package c64 builds the Commodore 64's CPU/memory/chip composition: a
// 6510 (6502 plus the 0x0000/0x0001 processor port), 64K of RAM, BASIC and
// KERNAL ROM banked in or out by the processor port and CIA #2's bank
// select, two 6526 CIAs (#1 driving the keyboard matrix and joystick
// ports and the system IRQ; #2 driving the serial bus, the VIC-II bank
// select, and NMI), and a 6567/6569 VIC-II, following the memory map in
// the teacher lineage's c64.rs/vic_ii.rs layout and this module's own
// Branch/Banked/Mirror composites for the bank-switched regions.
package c64

import (
	"time"

	"github.com/jmchacon/sys65/chips/cia"
	"github.com/jmchacon/sys65/cpu"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/memory"
	"github.com/jmchacon/sys65/platform"
	"github.com/jmchacon/sys65/system"
	"github.com/jmchacon/sys65/video/vic2"
)

const clockHz = 985_248 // PAL VIC-II dot clock / 8, the commonly cited PAL C64 Φ2 rate.

var _ system.Handle = (*Handle)(nil)

// Def configures a new C64.
type Def struct {
	BasicROM, KernalROM, CharROM []byte
	Cartridge                    []byte // Optional 8K/16K cartridge image at 0x8000.
	Provider                     platform.Provider
	Keys                         *keyboard.State[keyboard.Position]
}

// keyboardPort adapts the shared row/column key-state cell into the
// io.PortIn8 shape CIA #1's ports expect: one side drives the active
// column(s), the other reads back which rows are grounded.
type keyboardPort struct {
	keys   *keyboard.State[keyboard.Position]
	cols   *uint8 // Currently driven columns, written by port A.
	asRows bool
}

func (k *keyboardPort) Input() uint8 {
	var val uint8
	for row := uint8(0); row < 8; row++ {
		for col := uint8(0); col < 8; col++ {
			if *k.cols&(1<<col) == 0 && k.keys.IsDown(keyboard.Position{Row: row, Col: col}) {
				if k.asRows {
					val |= 1 << row
				}
			}
		}
	}
	return ^val
}

// cia1PortA captures the column-select nibble CIA #1 port A writes so
// cia1PortB (the row-read side) can use it. It is the single owned cell
// both port wrappers share, per this module's shared-interior-mutability
// convention.
type colSelect struct{ val uint8 }

func (c *colSelect) Input() uint8 { return c.val }

// Handle is a running Commodore 64.
type Handle struct {
	chip   *cpu.Chip
	vic2   *vic2.Chip
	cia1   *cia.Chip
	cia2   *cia.Chip
	ram    *memory.Block
	branch *memory.Branch
	port   *procPort
}

// procPort implements the 6510's built-in 0x0000 (DDR) / 0x0001 (data)
// processor I/O port, which on a real C64 drives the BASIC/KERNAL/
// char-ROM bank-switch lines (bits 0-2) in addition to the datasette
// control/sense lines (bits 3-5).
type procPort struct {
	ddr, data  uint8
	parent     memory.Bank
	databusVal uint8
	onChange   func(loram, hiram, charen bool)
}

func (p *procPort) Read(addr uint16) uint8 {
	var val uint8
	if addr&1 == 0 {
		val = p.ddr
	} else {
		val = (p.data & p.ddr) | (0x17 &^ p.ddr)
	}
	p.databusVal = val
	return val
}
func (p *procPort) Write(addr uint16, val uint8) {
	p.databusVal = val
	if addr&1 == 0 {
		p.ddr = val
	} else {
		p.data = val
	}
	if p.onChange != nil {
		p.onChange(p.bankState())
	}
}
func (p *procPort) PowerOn() {
	p.ddr, p.data = 0x2F, 0x37
	if p.onChange != nil {
		p.onChange(p.bankState())
	}
}
func (p *procPort) Reset()                { p.PowerOn() }
func (p *procPort) Poll(uint64) irq.Level { return irq.None }
func (p *procPort) Parent() memory.Bank   { return p.parent }
func (p *procPort) DatabusVal() uint8     { return p.databusVal }

// bankState reports the decoded LORAM/HIRAM/CHAREN bits (port data bits
// 0-2), the three lines real bank-switching logic outside the 6510 reads.
func (p *procPort) bankState() (loram, hiram, charen bool) {
	eff := (p.data & p.ddr) | (0x07 &^ p.ddr)
	return eff&0x01 != 0, eff&0x02 != 0, eff&0x04 != 0
}

// Init builds and powers on a C64.
func Init(d *Def) (*Handle, error) {
	ram, err := memory.NewBlock(&memory.BlockDef{Size: 0x10000})
	if err != nil {
		return nil, err
	}
	basic, err := romBlock(d.BasicROM, 0x2000)
	if err != nil {
		return nil, err
	}
	kernal, err := romBlock(d.KernalROM, 0x2000)
	if err != nil {
		return nil, err
	}

	keys := d.Keys
	if keys == nil {
		keys = keyboard.NewState[keyboard.Position]()
	}
	cols := &colSelect{}
	port := &procPort{}
	port.PowerOn()

	branch := memory.NewBranch(nil)
	root := memory.Bank(branch)
	port.parent = root

	h := &Handle{ram: ram, branch: branch, port: port}

	h.cia1, err = cia.Init(&cia.ChipDef{
		PortA: cols,
		PortB: &keyboardPort{keys: keys, cols: &cols.val, asRows: true},
	})
	if err != nil {
		return nil, err
	}
	h.cia2, err = cia.Init(&cia.ChipDef{Parent: root})
	if err != nil {
		return nil, err
	}
	h.vic2, err = vic2.Init(&vic2.ChipDef{Bus: ram, CharROM: d.CharROM, Parent: root})
	if err != nil {
		return nil, err
	}

	io := memory.NewBranch(root)
	io.Map(0x0000, h.vic2) // Mirrored every 64 bytes across 0xD000-0xD3FF by vic2's own addr%64 masking.
	// SID stub and color RAM (0xD400-0xDBFF) are plain RAM.
	io.Map(0x0400, memory.NewWindow(0xD400, ram, root))
	io.Map(0x0C00, h.cia1)
	io.Map(0x0D00, h.cia2)

	// Banked's children see addresses already rebased to 0-relative by the
	// enclosing Branch's Map call below, so the RAM fallback of each banked
	// region must be re-based back onto the shared 64K ram block with
	// Window rather than handed ram directly (which would otherwise read
	// and write 0x0000-0x1FFF/0x0000-0x1FFF/0x0000-0x0FFF of RAM instead of
	// the 0xA000/0xE000/0xD000 region actually being addressed).
	basicSel, ioSel, kernalSel := &memory.Selector{}, &memory.Selector{}, &memory.Selector{}
	branch.Map(0x0000, port)
	branch.Map(0x0002, ram)
	branch.Map(0xA000, memory.NewBanked(
		[]memory.Bank{basic, memory.NewWindow(0xA000, ram, root)}, basicSel, root))
	branch.Map(0xD000, memory.NewBanked(
		[]memory.Bank{io, memory.NewWindow(0xD000, ram, root)}, ioSel, root))
	branch.Map(0xE000, memory.NewBanked(
		[]memory.Bank{kernal, memory.NewWindow(0xE000, ram, root)}, kernalSel, root))

	// LORAM/HIRAM/CHAREN select ROM (index 0) or RAM (index 1) in each
	// banked window, omitting the character-ROM-at-0xD000 and cartridge
	// EXROM/GAME cases this module's memory map doesn't model.
	romIdx := func(visible bool) int {
		if visible {
			return 0
		}
		return 1
	}
	port.onChange = func(loram, hiram, charen bool) {
		basicSel.Set(romIdx(loram && hiram))
		kernalSel.Set(romIdx(hiram))
		ioSel.Set(romIdx(charen))
	}
	port.onChange(port.bankState())

	if len(d.Cartridge) > 0 {
		cart, err := romBlock(d.Cartridge, 0x2000)
		if err != nil {
			return nil, err
		}
		branch.Map(0x8000, cart)
	}

	chip, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS_6510, Mem: root, Irq: h.cia1, Nmi: h.cia2})
	if err != nil {
		return nil, err
	}
	h.chip = chip
	return h, nil
}

func romBlock(rom []byte, size int) (*memory.Block, error) {
	return memory.NewBlock(&memory.BlockDef{Size: size, Persistent: true, ROM: rom})
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
func (h *Handle) FrameSize() (int, int) { return 320, 200 }

// Render implements system.Handle.
func (h *Handle) Render(buf []byte) { h.vic2.Render(buf) }
