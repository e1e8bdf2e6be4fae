package vic2

import (
	"testing"

	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

func TestRasterCompareLatchesIRQStatus(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(regRaster, 5) // compare value's low 8 bits; bit 7 of CTRL1 stays 0.
	c.Write(regIRQEnable, irqRaster)

	var level irq.Level
	for cyc := uint64(63); cyc <= 63*10; cyc += 63 {
		level = c.Poll(cyc)
		if c.Raster() == 5 {
			break
		}
	}
	if c.Raster() != 5 {
		t.Fatalf("never reached raster line 5")
	}
	if level != irq.IRQ {
		t.Errorf("Poll at the matching raster line = %v, want IRQ", level)
	}
	if c.regs[regIRQStatus]&irqRaster == 0 {
		t.Errorf("IRQ status raster bit not latched")
	}
}

func TestIRQStatusWriteOneClearsLatchedBit(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.regs[regIRQStatus] = irqRaster | irqLP
	c.Write(regIRQStatus, irqRaster)
	if c.regs[regIRQStatus]&irqRaster != 0 {
		t.Errorf("writing a 1 bit to IRQ status should clear that latched flag")
	}
	if c.regs[regIRQStatus]&irqLP == 0 {
		t.Errorf("unrelated latched bits must survive a partial clear")
	}
}

func TestReadIRQStatusSetsMasterBitWhenAnyFlagLatched(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.regs[regIRQStatus] = irqSprSpr
	if got := c.Read(regIRQStatus); got&irqMaster == 0 {
		t.Errorf("Read(IRQ status) = %.2X, want master bit set", got)
	}
}

func TestSpritesDecodeXMSBAndEnable(t *testing.T) {
	c, err := Init(&ChipDef{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.Write(0x00, 0x10) // sprite 0 X low byte
	c.Write(regSpriteXMSB, 0x01)
	c.Write(regSpriteEnable, 0x01)
	sprites := c.Sprites()
	if !sprites[0].Enabled {
		t.Errorf("sprite 0 not enabled")
	}
	if sprites[0].X != 0x10+256 {
		t.Errorf("sprite 0 X = %d, want %d", sprites[0].X, 0x10+256)
	}
	if sprites[1].Enabled {
		t.Errorf("sprite 1 should not be enabled")
	}
}

func TestRenderUsesCharROMForBank0Charset(t *testing.T) {
	bus, err := memory.NewBlock(&memory.BlockDef{Size: 0x4000})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	charROM := make([]byte, 256*8)
	charROM[0x01*8] = 0x80 // glyph 1: single lit pixel top-left.

	c, err := Init(&ChipDef{Bus: bus, CharROM: charROM})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	// MemPtrs: screen at 0x0000 (bits 7:4 = 0), char base at 0x1000 (bits 3:1 = 2).
	c.Write(regMemPtrs, 0x04)
	bus.Write(0, 0x01) // screen code for cell (0,0)
	bus.Write(0xD800, 0x02)

	buf := make([]byte, 320*200)
	c.Render(buf)
	if buf[0] != 0x02 {
		t.Errorf("buf[0] = %.2X, want color nibble 0x02 on the lit pixel", buf[0])
	}
	if buf[1] == 0x02 {
		t.Errorf("buf[1] should be background, not foreground")
	}
}
