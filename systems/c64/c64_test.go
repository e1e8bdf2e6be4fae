package c64

import (
	"testing"

	"github.com/jmchacon/sys65/keyboard"
	"github.com/jmchacon/sys65/platform"
)

type fakeRandom struct{}

func (fakeRandom) Intn(n int) int { return 0 }

type fakeProvider struct{}

func (fakeProvider) Joystick(int) platform.JoystickState { return platform.JoystickState{} }
func (fakeProvider) Tape() platform.TapeState             { return platform.TapeState{} }
func (fakeProvider) Rand() platform.Random                { return fakeRandom{} }

func TestInitBuildsAndTicksWithoutError(t *testing.T) {
	h, err := Init(&Def{Provider: fakeProvider{}})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	h.Reset()
	for i := 0; i < 100; i++ {
		if _, err := h.Tick(); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
}

func TestInitWithCartridgeMapsAt8000(t *testing.T) {
	cart := make([]byte, 0x2000)
	cart[0] = 0xEA
	h, err := Init(&Def{Provider: fakeProvider{}, Cartridge: cart})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := h.branch.Read(0x8000); got != 0xEA {
		t.Errorf("mem[0x8000] = %.2X, want 0xEA (cartridge ROM mapped)", got)
	}
}

func TestBankSwitchSelectsROMVsRAMAtA000(t *testing.T) {
	basic := make([]byte, 0x2000)
	basic[0] = 0x4C // a recognizable BASIC ROM byte
	h, err := Init(&Def{Provider: fakeProvider{}, BasicROM: basic})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	// Default processor port state (PowerOn) has LORAM/HIRAM both set, so
	// BASIC ROM should be visible at 0xA000.
	if got := h.branch.Read(0xA000); got != 0x4C {
		t.Errorf("mem[0xA000] = %.2X, want 0x4C (BASIC ROM visible by default)", got)
	}

	// Clear LORAM (bit 0) to bank RAM in at 0xA000 instead.
	h.port.Write(1, h.port.data&^0x01)
	h.branch.Write(0xA000, 0x99)
	if got := h.branch.Read(0xA000); got != 0x99 {
		t.Errorf("mem[0xA000] = %.2X, want 0x99 (RAM banked in after clearing LORAM)", got)
	}
}

func TestKeyboardPortReportsPressedKey(t *testing.T) {
	keys := keyboard.NewState[keyboard.Position]()
	keys.Set(keyboard.Position{Row: 4, Col: 0}, true)

	var cols uint8
	rows := &keyboardPort{keys: keys, cols: &cols, asRows: true}

	cols = ^uint8(1)
	if got := rows.Input(); got&(1<<4) != 0 {
		t.Errorf("Input() = %.2X, row 4 bit should be clear when column 0 selected and held", got)
	}
}

func TestRenderMatchesFrameSizeWithoutPanicking(t *testing.T) {
	h, err := Init(&Def{Provider: fakeProvider{}})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	w, ht := h.FrameSize()
	buf := make([]byte, w*ht)
	h.Render(buf)
}
