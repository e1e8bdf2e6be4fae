package vic

import (
	"testing"

	"github.com/jmchacon/sys65/memory"
)

func TestRasterAdvancesAndWrapsPerVariant(t *testing.T) {
	c, err := Init(&ChipDef{Variant: NTSC})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Poll(64) // One cycle short of a full line at cyclesPerLine=65.
	if c.Raster() != 0 {
		t.Fatalf("Raster = %d, want 0 before a full line elapses", c.Raster())
	}
	c.Poll(65) // One more cycle crosses the line boundary.
	if c.Raster() != 1 {
		t.Fatalf("Raster = %d, want 1", c.Raster())
	}

	// Wrap: NTSC has 261 lines; drive it well past a full frame in one jump.
	c.Poll(65 + 65*300)
	if got, want := c.Raster(), uint16((1+300)%261); got != want {
		t.Errorf("Raster = %d, want %d (wraps mod linesPerFrame)", got, want)
	}
}

func TestColumnsRowsReadFromControlRegisters(t *testing.T) {
	c, err := Init(&ChipDef{Variant: NTSC})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x02, 22)      // 22 columns
	c.Write(0x03, 23<<1|1) // 23 rows, interlace bit irrelevant to Rows()
	if got := c.Columns(); got != 22 {
		t.Errorf("Columns = %d, want 22", got)
	}
	if got := c.Rows(); got != 23 {
		t.Errorf("Rows = %d, want 23", got)
	}
}

func TestRenderScansScreenAndColorRAMThroughCharROM(t *testing.T) {
	videoMem, err := memory.NewBlock(&memory.BlockDef{Size: 0x0200})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	charROM := make([]byte, 256*8)
	// Glyph for code 0x41: a solid top row, nothing else.
	charROM[0x41*8] = 0xFF

	c, err := Init(&ChipDef{Variant: NTSC, VideoMem: videoMem, CharROM: charROM})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x02, 1) // 1 column
	c.Write(0x03, 1<<1)
	videoMem.Write(0, 0x41)    // screen code
	videoMem.Write(1, 0x05)    // color nibble for the one cell

	buf := make([]byte, 8*8)
	c.Render(buf)
	for x := 0; x < 8; x++ {
		if buf[x] != 0x05 {
			t.Errorf("buf[%d] = %.2X, want 0x05 (foreground color on the glyph's solid top row)", x, buf[x])
		}
	}
	for x := 0; x < 8; x++ {
		if buf[8+x] != c.regs[0x0F]&0x0F {
			t.Errorf("buf[%d] = %.2X, want background color on glyph row 1 (blank)", 8+x, buf[8+x])
		}
	}
}
