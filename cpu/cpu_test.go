package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmchacon/sys65/irq"
	"github.com/jmchacon/sys65/memory"
)

// flatMemory is a minimal 64K memory.Bank for exercising the CPU in
// isolation, in the same spirit as the teacher's own flatMemory test helper.
type flatMemory struct {
	mem [65536]uint8
	db  uint8
}

func (f *flatMemory) Read(addr uint16) uint8 {
	f.db = f.mem[addr]
	return f.db
}
func (f *flatMemory) Write(addr uint16, val uint8) {
	f.mem[addr] = val
	f.db = val
}
func (f *flatMemory) PowerOn()                {}
func (f *flatMemory) Reset()                  {}
func (f *flatMemory) Poll(uint64) irq.Level   { return irq.None }
func (f *flatMemory) Parent() memory.Bank     { return nil }
func (f *flatMemory) DatabusVal() uint8       { return f.db }

func newChip(t *testing.T, typ CPUType) (*Chip, *flatMemory) {
	t.Helper()
	m := &flatMemory{}
	c, err := Init(&ChipDef{Cpu: typ, Mem: m})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c, m
}

func load(m *flatMemory, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.mem[int(addr)+i] = b
	}
}

func setResetVector(m *flatMemory, addr uint16) {
	m.mem[RESET_VECTOR] = uint8(addr)
	m.mem[RESET_VECTOR+1] = uint8(addr >> 8)
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	load(m, 0x0600, 0xA9, 0x00) // LDA #$00
	c.Reset()
	if _, err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.A != 0x00 {
		t.Errorf("A = %.2X, want 0x00", c.A)
	}
	if c.P&P_ZERO == 0 {
		t.Errorf("Z flag not set for zero load")
	}
	if c.P&P_NEGATIVE != 0 {
		t.Errorf("N flag unexpectedly set")
	}
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	// LDA #$7F; CLC; ADC #$01 -> 0x80, overflow set, negative set.
	load(m, 0x0600, 0xA9, 0x7F, 0x18, 0x69, 0x01)
	c.Reset()
	for i := 0; i < 3; i++ {
		if _, err := c.Tick(); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
	if c.A != 0x80 {
		t.Errorf("A = %.2X, want 0x80", c.A)
	}
	if c.P&P_OVERFLOW == 0 {
		t.Errorf("V flag not set on signed overflow")
	}
	if c.P&P_NEGATIVE == 0 {
		t.Errorf("N flag not set")
	}
	if c.P&P_CARRY != 0 {
		t.Errorf("C flag unexpectedly set")
	}
}

func TestBRKPushesPCAndBSetPFlagAndJumpsThroughIRQVector(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	m.mem[IRQ_VECTOR] = 0x00
	m.mem[IRQ_VECTOR+1] = 0x08
	load(m, 0x0600, 0x00, 0xEA) // BRK; NOP (NOP skipped as BRK's signature byte)
	c.Reset()
	if _, err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x0800 {
		t.Errorf("PC = %.4X, want 0x0800 - state: %s", c.PC, spew.Sdump(c))
	}
	if c.P&P_INTERRUPT == 0 {
		t.Errorf("I flag not set after BRK")
	}
	pushed := m.mem[stackBase+uint16(c.S)+1]
	if pushed&P_B == 0 {
		t.Errorf("pushed P does not have B set: %.2X", pushed)
	}
}

func TestNMOSJMPIndirectPageWrapBug(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	load(m, 0x0600, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	m.mem[0x02FF] = 0x34
	m.mem[0x0200] = 0x12 // NMOS bug: high byte comes from $0200, not $0300.
	m.mem[0x0300] = 0xFF
	c.Reset()
	if _, err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %.4X, want 0x1234 (NMOS page-wrap bug)", c.PC)
	}
}

func TestCMOSJMPIndirectNoPageWrapBug(t *testing.T) {
	c, m := newChip(t, CPU_CMOS)
	setResetVector(m, 0x0600)
	load(m, 0x0600, 0x6C, 0xFF, 0x02)
	m.mem[0x02FF] = 0x34
	m.mem[0x0200] = 0xFF
	m.mem[0x0300] = 0x12
	c.Reset()
	if _, err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %.4X, want 0x1234 (CMOS fixes the page-wrap bug)", c.PC)
	}
}

func TestHaltOpcodeStopsExecution(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	load(m, 0x0600, 0x02) // HLT/JAM/KIL
	c.Reset()
	if _, err := c.Tick(); err == nil {
		t.Fatalf("expected error from halt opcode")
	}
	if _, err := c.Tick(); err == nil {
		t.Fatalf("expected CPU to remain halted on subsequent Tick")
	}
}

func TestBRAOnlyOnCMOS(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	load(m, 0x0600, 0x80, 0x10) // BRA on NMOS is an illegal 2-byte NOP, not a branch.
	c.Reset()
	pcBefore := c.PC
	if _, err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != pcBefore+2 {
		t.Errorf("PC = %.4X, want %.4X (NMOS 0x80 is a 2-byte NOP, not BRA)", c.PC, pcBefore+2)
	}

	c2, m2 := newChip(t, CPU_CMOS)
	setResetVector(m2, 0x0600)
	load(m2, 0x0600, 0x80, 0x10)
	c2.Reset()
	pcBefore2 := c2.PC
	if _, err := c2.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c2.PC != pcBefore2+2+0x10 {
		t.Errorf("PC = %.4X, want %.4X (CMOS BRA branches)", c2.PC, pcBefore2+2+0x10)
	}
}

func TestIllegalSLOCombinesASLAndORA(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	load(m, 0x0600, 0xA9, 0x01, 0x07, 0x10) // LDA #$01; SLO $10
	m.mem[0x0010] = 0x41
	c.Reset()
	for i := 0; i < 2; i++ {
		if _, err := c.Tick(); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
	if m.mem[0x0010] != 0x82 {
		t.Errorf("mem[0x10] = %.2X, want 0x82 (ASL of 0x41)", m.mem[0x0010])
	}
	if c.A != 0x83 {
		t.Errorf("A = %.2X, want 0x83 (0x01 ORA 0x82)", c.A)
	}
}

func TestNMIPreemptsPendingIRQ(t *testing.T) {
	c, m := newChip(t, CPU_NMOS)
	setResetVector(m, 0x0600)
	m.mem[NMI_VECTOR] = 0x00
	m.mem[NMI_VECTOR+1] = 0x09
	m.mem[IRQ_VECTOR] = 0x00
	m.mem[IRQ_VECTOR+1] = 0x0A
	load(m, 0x0600, 0xEA) // NOP; Reset sets I, so it is cleared by hand below.
	c.Reset()
	c.P &^= P_INTERRUPT
	c.pendingIRQ = true
	c.pendingNMI = true
	if _, err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.PC != 0x0900 {
		t.Errorf("PC = %.4X, want 0x0900 (NMI takes priority over IRQ) - state: %s", c.PC, spew.Sdump(c))
	}
}
