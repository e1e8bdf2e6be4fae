// Package vic20 builds the Commodore VIC-20's CPU/memory/chip composition:
// a plain NMOS 6502, the low/main/screen RAM regions the stock machine
// ships with (unexpanded; cartridge RAM expansion is a known extension),
// character ROM, a 6560/6561 VIC sharing the video/color RAM, two 6522 VIAs
// (VIA1 driving the joystick/NMI restore key, VIA2 driving the keyboard
// matrix and cassette), and BASIC/kernal ROM, following the memory map in
// the teacher lineage's vic20.rs layout and this module's own Branch
// composite for the fixed address decode.
package vic20

import (
	"time"

	"github.com/jmchacon/sys65/chips/via"
	"github.com/jmchacon/sys65/cpu"
	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/memory"
	"github.com/jmchacon/sys65/platform"
	"github.com/jmchacon/sys65/system"
	"github.com/jmchacon/sys65/video/vic"
)

const clockHz = 1_000_000

var _ system.Handle = (*Handle)(nil)

// Def configures a new VIC-20.
type Def struct {
	BasicROM, KernalROM, CharROM []byte
	PAL                          bool
	Provider                     platform.Provider
	Keys                         *keyboard.State[keyboard.Position]
}

// colSelect is VIA2 port A's column-select latch, shared with its own port
// B (rows) the way every keyboard-matrix machine in this module shares one.
type colSelect struct{ val uint8 }

func (c *colSelect) Input() uint8 { return c.val }

type keyboardRows struct {
	keys *keyboard.State[keyboard.Position]
	cols *uint8
}

func (k *keyboardRows) Input() uint8 {
	var val uint8
	for row := uint8(0); row < 8; row++ {
		for col := uint8(0); col < 8; col++ {
			if *k.cols&(1<<col) == 0 && k.keys.IsDown(keyboard.Position{Row: row, Col: col}) {
				val |= 1 << row
			}
		}
	}
	return ^val
}

// Handle is a running VIC-20.
type Handle struct {
	chip  *cpu.Chip
	vic   *vic.Chip
	via1  *via.Chip
	via2  *via.Chip
	ram   *memory.Block
	video *memory.Block
}

// Init builds and powers on a VIC-20.
func Init(d *Def) (*Handle, error) {
	lowRAM, err := memory.NewBlock(&memory.BlockDef{Size: 0x0400})
	if err != nil {
		return nil, err
	}
	mainRAM, err := memory.NewBlock(&memory.BlockDef{Size: 0x0E00})
	if err != nil {
		return nil, err
	}
	video, err := memory.NewBlock(&memory.BlockDef{Size: 0x0200})
	if err != nil {
		return nil, err
	}
	charROM, err := memory.NewBlock(&memory.BlockDef{Size: 0x1000, Persistent: true, ROM: d.CharROM})
	if err != nil {
		return nil, err
	}
	colorRAM, err := memory.NewBlock(&memory.BlockDef{Size: 0x0200})
	if err != nil {
		return nil, err
	}
	basic, err := memory.NewBlock(&memory.BlockDef{Size: 0x2000, Persistent: true, ROM: d.BasicROM})
	if err != nil {
		return nil, err
	}
	kernal, err := memory.NewBlock(&memory.BlockDef{Size: 0x2000, Persistent: true, ROM: d.KernalROM})
	if err != nil {
		return nil, err
	}

	keys := d.Keys
	if keys == nil {
		keys = keyboard.NewState[keyboard.Position]()
	}
	cols := &colSelect{}

	branch := memory.NewBranch(nil)
	root := memory.Bank(branch)

	h := &Handle{ram: mainRAM, video: video}

	h.via1, err = via.Init(&via.ChipDef{Parent: root})
	if err != nil {
		return nil, err
	}
	h.via2, err = via.Init(&via.ChipDef{PortA: cols, PortB: &keyboardRows{keys: keys, cols: &cols.val}, Parent: root})
	if err != nil {
		return nil, err
	}

	variant := vic.NTSC
	if d.PAL {
		variant = vic.PAL
	}
	// video carries the screen-code matrix; color nibbles live in the
	// separate nibble-wide colorRAM region, so vic's contiguous
	// screen-then-color scanout model is adapted here via a tiny composite
	// bank pairing the two, mirroring the teacher's Branch/Mirror idiom for
	// giving one logical device a view spanning two physical regions.
	videoView := memory.NewBranch(root)
	videoView.Map(0x0000, video)
	videoView.Map(0x0200, colorRAM)
	h.vic, err = vic.Init(&vic.ChipDef{Variant: variant, VideoMem: videoView, CharROM: d.CharROM, Parent: root})
	if err != nil {
		return nil, err
	}

	branch.Map(0x0000, lowRAM)
	branch.Map(0x1000, mainRAM)
	branch.Map(0x1E00, video)
	branch.Map(0x8000, charROM)
	branch.Map(0x9000, h.vic)
	branch.Map(0x9110, h.via1)
	branch.Map(0x9120, h.via2)
	branch.Map(0x9600, colorRAM)
	branch.Map(0xC000, basic)
	branch.Map(0xE000, kernal)

	chip, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS, Mem: root, Irq: h.via2})
	if err != nil {
		return nil, err
	}
	h.chip = chip
	return h, nil
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
func (h *Handle) FrameSize() (int, int) { return h.vic.Columns() * 8, h.vic.Rows() * 8 }

// Render implements system.Handle.
func (h *Handle) Render(buf []byte) { h.vic.Render(buf) }
