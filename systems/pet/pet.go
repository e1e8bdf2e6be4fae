// Package pet builds the Commodore PET 2001/40-column's CPU/memory/chip
// composition: a plain NMOS 6502, 32K of RAM, 1K of 40x25 character-code
// video RAM, two 6520 PIAs (PIA1 driving the keyboard matrix and the 60Hz
// vertical-blank interrupt; PIA2 driving the IEEE-488 bus and screen blank),
// one 6522 VIA (cassette motor/sense and a free-running timer), and BASIC,
// editor, and kernal ROM, following the memory map in the teacher lineage's
// pet.rs layout and this module's own Branch composite for the fixed
// (non-bank-switched) address decode.
package pet

import (
	"time"

	"github.com/jmchacon/sys65/chips/pia"
	"github.com/jmchacon/sys65/chips/via"
	"github.com/jmchacon/sys65/cpu"
	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/memory"
	"github.com/jmchacon/sys65/platform"
	"github.com/jmchacon/sys65/system"
)

const clockHz = 1_000_000

const (
	videoBase  = uint16(0x8000)
	videoCols  = 40
	videoRows  = 25
)

var _ system.Handle = (*Handle)(nil)

// Def configures a new PET.
type Def struct {
	BasicROM, EditorROM, KernalROM, CharROM []byte
	Provider                                platform.Provider
	Keys                                     *keyboard.State[keyboard.Position]
}

// colSelect is PIA1 port A's column-select latch, shared with port B's row
// read-back the same way the C64's CIA #1 keyboard ports share one. Bit 7
// is never used by the 7-column select value the PET's keyboard matrix
// needs, so it doubles as this chip package's CA1 edge-detect input (real
// hardware wires CA1 to a dedicated vertical-blank pin; this PIA model
// detects CA1 edges on its own port A bit 7 instead of a separate pin).
type colSelect struct {
	val    uint8
	vblank *vblank
}

func (c *colSelect) Input() uint8 {
	v := c.val & 0x7F
	if c.vblank.Input() != 0 {
		v |= 0x80
	}
	return v
}

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

// vblank pulses CA1 on PIA1 once per emulated 60Hz frame, the PET's only
// source of a periodic timer interrupt outside of polling the VIA.
type vblank struct {
	cycle  uint64
	period uint64
}

func (v *vblank) Input() uint8 {
	phase := v.cycle % v.period
	if phase < v.period/2 {
		return 0x00
	}
	return 0x80
}

// Handle is a running Commodore PET.
type Handle struct {
	chip    *cpu.Chip
	pia1    *pia.Chip
	pia2    *pia.Chip
	via     *via.Chip
	ram     *memory.Block
	video   *memory.Block
	charROM []byte
	vblank  *vblank
}

// Init builds and powers on a PET.
func Init(d *Def) (*Handle, error) {
	ram, err := memory.NewBlock(&memory.BlockDef{Size: 0x8000})
	if err != nil {
		return nil, err
	}
	video, err := memory.NewBlock(&memory.BlockDef{Size: 0x1000})
	if err != nil {
		return nil, err
	}
	basic, err := memory.NewBlock(&memory.BlockDef{Size: 0x2000, Persistent: true, ROM: d.BasicROM})
	if err != nil {
		return nil, err
	}
	editor, err := memory.NewBlock(&memory.BlockDef{Size: 0x0800, Persistent: true, ROM: d.EditorROM})
	if err != nil {
		return nil, err
	}
	kernal, err := memory.NewBlock(&memory.BlockDef{Size: 0x1000, Persistent: true, ROM: d.KernalROM})
	if err != nil {
		return nil, err
	}

	keys := d.Keys
	if keys == nil {
		keys = keyboard.NewState[keyboard.Position]()
	}
	vb := &vblank{period: clockHz / 60}
	cols := &colSelect{vblank: vb}

	branch := memory.NewBranch(nil)
	root := memory.Bank(branch)

	h := &Handle{ram: ram, video: video, charROM: d.CharROM, vblank: vb}

	h.pia1, err = pia.Init(&pia.ChipDef{PortA: cols, PortB: &keyboardRows{keys: keys, cols: &cols.val}, Parent: root})
	if err != nil {
		return nil, err
	}
	h.pia2, err = pia.Init(&pia.ChipDef{Parent: root})
	if err != nil {
		return nil, err
	}
	h.via, err = via.Init(&via.ChipDef{Parent: root})
	if err != nil {
		return nil, err
	}

	branch.Map(0x0000, ram)
	branch.Map(videoBase, video)
	branch.Map(0xC000, basic)
	branch.Map(0xE000, editor)
	branch.Map(0xE810, h.pia1)
	branch.Map(0xE820, h.pia2)
	branch.Map(0xE840, h.via)
	branch.Map(0xF000, kernal)

	chip, err := cpu.Init(&cpu.ChipDef{Cpu: cpu.CPU_NMOS, Mem: root, Irq: h.pia1})
	if err != nil {
		return nil, err
	}
	h.chip = chip
	return h, nil
}

// Tick implements system.Handle.
func (h *Handle) Tick() (time.Duration, error) {
	cycles, err := h.chip.Tick()
	h.vblank.cycle = h.chip.CycleCount()
	return time.Duration(cycles) * time.Second / clockHz, err
}

// Reset implements system.Handle.
func (h *Handle) Reset() { h.chip.Reset() }

// AttachTrace implements system.Handle.
func (h *Handle) AttachTrace(fn func(cpu.TraceEntry)) { h.chip.AttachTrace(fn) }

// FrameSize implements system.Handle.
func (h *Handle) FrameSize() (int, int) { return videoCols * 8, videoRows * 8 }

// Render implements system.Handle, scanning out the 40x25 character-code
// video RAM through an 8x8 character ROM glyph table the same way video/vic
// renders its own text mode.
func (h *Handle) Render(buf []byte) {
	charROM := h.charROM
	if len(charROM) < 256*8 {
		return
	}
	w, _ := h.FrameSize()
	for row := 0; row < videoRows; row++ {
		for col := 0; col < videoCols; col++ {
			code := h.video.Read(uint16(row*videoCols + col))
			glyph := charROM[int(code)*8 : int(code)*8+8]
			for gy := 0; gy < 8; gy++ {
				line := glyph[gy]
				for gx := 0; gx < 8; gx++ {
					px := (col*8 + gx)
					py := row*8 + gy
					idx := py*w + px
					if idx >= len(buf) {
						continue
					}
					if line&(0x80>>uint(gx)) != 0 {
						buf[idx] = 1
					} else {
						buf[idx] = 0
					}
				}
			}
		}
	}
}
