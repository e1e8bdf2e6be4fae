package vic20

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
	for _, pal := range []bool{false, true} {
		h, err := Init(&Def{Provider: fakeProvider{}, PAL: pal})
		if err != nil {
			t.Fatalf("Init(PAL=%v): %v", pal, err)
		}
		h.Reset()
		for i := 0; i < 100; i++ {
			if _, err := h.Tick(); err != nil {
				t.Fatalf("Tick %d (PAL=%v): %v", i, pal, err)
			}
		}
	}
}

func TestKeyboardMatrixReportsPressedKey(t *testing.T) {
	keys := keyboard.NewState[keyboard.Position]()
	keys.Set(keyboard.Position{Row: 1, Col: 5}, true)

	var cols uint8
	rows := &keyboardRows{keys: keys, cols: &cols}

	cols = ^uint8(1 << 5)
	if got := rows.Input(); got&(1<<1) != 0 {
		t.Errorf("Input() = %.2X, row 1 bit should be clear when column 5 selected and held", got)
	}
	cols = 0xFF
	if got := rows.Input(); got != 0xFF {
		t.Errorf("Input() = %.2X, want 0xFF with no column selected", got)
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
