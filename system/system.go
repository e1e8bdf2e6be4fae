// Package system defines the common surface every machine factory
// (systems/pet, systems/vic20, systems/c64, systems/appleiie,
// systems/easy6502) returns, so host code (cmd/demo, tests) can drive any
// of them identically regardless of which chips and memory map sit behind
// it — the same "one factory, one Init/Run surface" shape the teacher uses
// for atari2600.Init/atari2600.Run.
package system

import (
	"time"

	"github.com/jmchacon/sys65/cpu"
)

// Handle is a fully constructed, powered-on machine.
type Handle interface {
	// Tick executes exactly one CPU instruction (servicing a pending
	// interrupt first if one is latched) and returns how much wall-clock
	// time it represents at the machine's nominal clock rate.
	Tick() (time.Duration, error)
	// Reset pulses the machine's reset line.
	Reset()
	// Render copies one frame of the machine's video output into buf as
	// 8-bit palette indices, row-major.
	Render(buf []byte)
	// AttachTrace installs a CPU instruction trace handler, or clears it
	// if fn is nil.
	AttachTrace(fn func(cpu.TraceEntry))
	// FrameSize reports the pixel dimensions Render expects buf to hold.
	FrameSize() (width, height int)
}
