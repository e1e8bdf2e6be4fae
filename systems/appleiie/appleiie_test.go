package appleiie

import (
	"testing"

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

func TestSoftSwitchFlipsOnAccessParity(t *testing.T) {
	s := newSoftSwitches(nil, nil)
	s.Read(0xC053) // odd -> mixed on
	if !s.mixed {
		t.Errorf("reading 0xC053 should set mixed=true")
	}
	s.Read(0xC052) // even -> mixed off
	if s.mixed {
		t.Errorf("reading 0xC052 should clear mixed")
	}
}

func TestLanguageCardSwitchDecodesReadWrite(t *testing.T) {
	s := newSoftSwitches(nil, nil)
	s.Read(0xC083) // bits 11 -> langRead
	if !s.langRead || s.langWrite {
		t.Errorf("0xC083 should select langRead only, got read=%v write=%v", s.langRead, s.langWrite)
	}
	s.Read(0xC081) // bits 01 -> langWrite
	if !s.langWrite || s.langRead {
		t.Errorf("0xC081 should select langWrite only, got read=%v write=%v", s.langRead, s.langWrite)
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
