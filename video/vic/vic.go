// Package vic implements the MOS Technology 6560/6561 Video Interface Chip
// used by the Commodore VIC-20 (NTSC 6560, PAL 6561): a register file
// driving screen geometry and colors, a raster counter, and a scanout path
// that reads screen/color codes and an 8x8 character generator through a
// supplied memory.Bank, following the teacher's chip-as-memory.Bank
// construction pattern (ChipDef + Init + Poll-driven internal clocking).
package vic

import (
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

var _ memory.Bank = (*Chip)(nil)

// Variant distinguishes the NTSC 6560 from the PAL 6561: they differ only
// in raster geometry and nominal color clock.
type Variant int

const (
	NTSC Variant = iota
	PAL
)

const numRegisters = 0x10

// ChipDef defines a VIC at construction time.
type ChipDef struct {
	Variant  Variant
	VideoMem memory.Bank // Screen/color RAM window the VIC scans out.
	CharROM  []byte      // 8 bytes per glyph, 256 glyphs.
	Parent   memory.Bank
}

// Chip is a complete MOS 6560/6561.
type Chip struct {
	regs     [numRegisters]uint8
	variant  Variant
	videoMem memory.Bank
	charROM  []byte

	raster       uint16
	linesPerFrame uint16
	cycle        uint64
	lastPoll     uint64

	parent     memory.Bank
	databusVal uint8
}

// Init constructs and powers on a VIC.
func Init(d *ChipDef) (*Chip, error) {
	lines := uint16(261) // NTSC.
	if d.Variant == PAL {
		lines = 312
	}
	c := &Chip{variant: d.Variant, videoMem: d.VideoMem, charROM: d.CharROM, linesPerFrame: lines, parent: d.Parent}
	c.PowerOn()
	return c, nil
}

// PowerOn implements memory.Bank.
func (c *Chip) PowerOn() {
	for i := range c.regs {
		c.regs[i] = 0
	}
	c.raster = 0
	c.cycle = 0
}

// Reset implements memory.Bank.
func (c *Chip) Reset() { c.PowerOn() }

// Read implements memory.Bank over the register file, masked to its size.
func (c *Chip) Read(addr uint16) uint8 {
	i := int(addr) % numRegisters
	val := c.regs[i]
	if i == 0x03 { // Raster/vertical-origin register aliases the low 8 bits of the raster counter.
		val = uint8(c.raster)
	}
	c.databusVal = val
	return val
}

// Write implements memory.Bank.
func (c *Chip) Write(addr uint16, val uint8) {
	c.databusVal = val
	c.regs[int(addr)%numRegisters] = val
}

// Poll implements memory.Bank: advances the raster counter by the elapsed
// Φ2 cycles. The VIC never drives the CPU's IRQ line on any system this
// module targets, so Poll always reports irq.None.
func (c *Chip) Poll(cycles uint64) irq.Level {
	elapsed := cycles - c.lastPoll
	c.lastPoll = cycles
	c.cycle += elapsed
	const cyclesPerLine = 65
	for c.cycle >= cyclesPerLine {
		c.cycle -= cyclesPerLine
		c.raster = (c.raster + 1) % c.linesPerFrame
	}
	return irq.None
}

// Parent implements memory.Bank.
func (c *Chip) Parent() memory.Bank { return c.parent }

// DatabusVal implements memory.Bank.
func (c *Chip) DatabusVal() uint8 { return c.databusVal }

// Raster returns the current raster line, for tests and for systems that
// want to trigger work at specific lines.
func (c *Chip) Raster() uint16 { return c.raster }

// Columns/Rows report the text geometry currently programmed into the
// register file (screen control registers 0x02/0x03's column/row-count
// fields).
func (c *Chip) Columns() int { return int(c.regs[0x02] & 0x7F) }
func (c *Chip) Rows() int    { return int(c.regs[0x03]>>1) & 0x3F }

// Render rasterizes one full frame into buf as 8-bit palette indices, one
// byte per pixel, row-major, sized Columns()*8 x Rows()*8. Screen codes and
// per-character color nibbles are read from videoMem's first
// Columns()*Rows() bytes (screen matrix) and following Columns()*Rows()
// bytes (color nibbles), matching the VIC-20's contiguous screen/color RAM
// layout.
func (c *Chip) Render(buf []byte) {
	cols, rows := c.Columns(), c.Rows()
	if cols == 0 || rows == 0 || c.videoMem == nil || len(c.charROM) < 256*8 {
		return
	}
	width := cols * 8
	cellCount := uint16(cols * rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			idx := uint16(cy*cols + cx)
			screenCode := c.videoMem.Read(idx)
			colorNibble := c.videoMem.Read(cellCount + idx)
			glyph := c.charROM[int(screenCode)*8 : int(screenCode)*8+8]
			for row := 0; row < 8; row++ {
				bits := glyph[row]
				py := cy*8 + row
				for bit := 0; bit < 8; bit++ {
					px := cx*8 + bit
					set := bits&(0x80>>uint(bit)) != 0
					var pixel byte
					if set {
						pixel = colorNibble & 0x0F
					} else {
						pixel = c.regs[0x0F] & 0x0F // Background color register.
					}
					buf[py*width+px] = pixel
				}
			}
		}
	}
}
