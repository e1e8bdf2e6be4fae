package easy6502

import (
	"math/rand"
	"testing"

	"github.com/jmchacon/sys65/platform"
)

type fakeRandom struct{ r *rand.Rand }

func (f *fakeRandom) Intn(n int) int { return f.r.Intn(n) }

type fakeProvider struct{ rnd platform.Random }

func (p *fakeProvider) Joystick(int) platform.JoystickState { return platform.JoystickState{} }
func (p *fakeProvider) Tape() platform.TapeState             { return platform.TapeState{} }
func (p *fakeProvider) Rand() platform.Random                { return p.rnd }

func newProvider() platform.Provider {
	return &fakeProvider{rnd: &fakeRandom{r: rand.New(rand.NewSource(1))}}
}

func TestRandomAddrReturnsFreshByteEachRead(t *testing.T) {
	h, err := Init(&Def{Provider: newProvider()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	a := h.ram.Read(randomAddr)
	b := h.ram.Read(randomAddr)
	if a == b {
		// Extremely unlikely with a seeded PRNG across two draws, but not
		// impossible; re-drawing to reduce flakiness without asserting
		// determinism this package doesn't promise.
		c := h.ram.Read(randomAddr)
		if a == c {
			t.Errorf("randomAddr returned the same byte on three consecutive reads")
		}
	}
}

func TestROMLoadsAtOriginAndSetsResetVector(t *testing.T) {
	rom := []byte{0xA9, 0x42} // LDA #$42
	h, err := Init(&Def{Provider: newProvider(), ROM: rom})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	h.Reset()
	if _, err := h.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := h.ram.Read(0x0600); got != 0xA9 {
		t.Errorf("mem[0x0600] = %.2X, want 0xA9 (ROM loaded at tutorial origin)", got)
	}
}

func TestRenderCopiesScreenMemory(t *testing.T) {
	h, err := Init(&Def{Provider: newProvider()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	h.ram.Write(screenBase, 0x07)
	buf := make([]byte, frameWidth*frameHeight)
	h.Render(buf)
	if buf[0] != 0x07 {
		t.Errorf("buf[0] = %.2X, want 0x07", buf[0])
	}
}
