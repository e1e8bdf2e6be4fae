package pet

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

func TestKeyboardMatrixReportsPressedKey(t *testing.T) {
	keys := keyboard.NewState[keyboard.Position]()
	keys.Set(keyboard.Position{Row: 3, Col: 2}, true)

	var cols uint8
	rows := &keyboardRows{keys: keys, cols: &cols}

	cols = ^uint8(1 << 2) // select column 2, all other columns high
	if got := rows.Input(); got&(1<<3) != 0 {
		t.Errorf("Input() = %.2X, row 3 bit should be clear (key held) when column 2 selected", got)
	}

	cols = 0xFF // no column selected
	if got := rows.Input(); got != 0xFF {
		t.Errorf("Input() = %.2X, want 0xFF with no column selected", got)
	}
}

func TestVblankPulsesColSelectBit7EachFrame(t *testing.T) {
	vb := &vblank{period: 100}
	cs := &colSelect{vblank: vb}

	vb.cycle = 0
	if got := cs.Input(); got&0x80 != 0 {
		t.Errorf("Input() bit 7 set at cycle 0, want clear (first half of frame)")
	}
	vb.cycle = 60
	if got := cs.Input(); got&0x80 == 0 {
		t.Errorf("Input() bit 7 clear at cycle 60, want set (second half of frame, vblank pulse)")
	}
}

func TestColSelectLowBitsPreserveColumnValueUnderVblank(t *testing.T) {
	vb := &vblank{period: 100, cycle: 60}
	cs := &colSelect{val: 0x2A, vblank: vb}
	got := cs.Input()
	if got&0x7F != 0x2A {
		t.Errorf("Input() low 7 bits = %.2X, want 0x2A preserved under the vblank pulse", got&0x7F)
	}
	if got&0x80 == 0 {
		t.Errorf("Input() bit 7 should still carry the vblank pulse")
	}
}

func TestRenderProducesFullFrameWithoutCharROM(t *testing.T) {
	h, err := Init(&Def{Provider: fakeProvider{}})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	w, ht := h.FrameSize()
	buf := make([]byte, w*ht)
	h.Render(buf) // No CharROM supplied: must no-op, not panic.
}
