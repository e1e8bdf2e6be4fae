// Package platform defines the boundary between a system.Handle and
// whatever host environment drives it: keyboard/joystick input delivery,
// frame presentation geometry, tape/datasette state, and a source of
// randomness for a system's random-byte device. A system never talks
// to a host windowing toolkit directly; it only calls through a Provider,
// the same separation of concerns the teacher draws between its chip
// packages and vcs/vcs_main.go's SDL2 host loop.
package platform

// Window describes the pixel geometry a system renders into.
type Window struct {
	Width  int
	Height int
}

// JoystickState is the up/down/left/right/fire state of one digital
// joystick port, as every 8 bit home computer this module targets reads
// it through a PIA or VIA port.
type JoystickState struct {
	Up, Down, Left, Right, Fire bool
}

// TapeState reports the host's current datasette/cassette transport state.
// This module's Non-goals exclude tape UI; this type exists only so a
// Provider can report "no tape attached" without the systems package
// needing a host-specific stub.
type TapeState struct {
	Present bool
	Playing bool
}

// Random is an injectable source of randomness, so tests can supply a
// deterministic sequence. easy6502 reads its 0x00FE random byte from it;
// power-on RAM and CPU register contents come from math/rand instead.
type Random interface {
	Intn(n int) int
}

// Provider is the host-side implementation a system.Handle is constructed
// with. Implementations are free to back Joystick/Tape with whatever
// windowing toolkit they like (cmd/demo backs it with go-sdl2); the
// systems package only ever sees this interface.
type Provider interface {
	// Joystick returns the current state of joystick port n (0 or 1; not
	// every system has both).
	Joystick(port int) JoystickState
	// Tape returns the current datasette state.
	Tape() TapeState
	// Rand returns the Random source for a system's random-byte device.
	Rand() Random
}
