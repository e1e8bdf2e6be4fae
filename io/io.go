// Package io defines the basic interfaces for working with a 6502 family
// based I/O port (generally bi-directional). It's intended that implementors
// of a chip port call the input callback (if provided) on every clock tick
// and properly account for the fact that output won't mirror input for a
// clock cycle (to account for latches being loaded).
package io

// PortIn8 defines an 8 bit I/O port input source. A keyboard matrix column
// scanner, joystick adapter or similar implements this to feed a chip port.
type PortIn8 interface {
	// Input returns the current value being set on the given input port.
	Input() uint8
}

// PortOut8 defines an 8 bit I/O port output sink. Implementors expose the
// most recently latched output value of a chip port.
type PortOut8 interface {
	// Output returns the current output pin values for the port.
	Output() uint8
}

// PortIn1 defines a single bit input, used for joystick directions, buttons
// and other boolean-level lines.
type PortIn1 interface {
	Input() bool
}

// ControlLines tracks the four edge-triggered control pins (CA1/CA2/CB1/CB2)
// that VIA and CIA ports carry alongside their 8 data pins. Peripheral
// control registers interpret transitions on these to latch port data and/or
// raise interrupts; PIA uses only CA1/CB1 plus CA2/CB2 in simpler form.
type ControlLines struct {
	CA1, CA2 bool
	CB1, CB2 bool
}

// Port is the closed capability set every bus-mapped I/O port offers,
// matching spec's four-operation port contract. Read may side-effect (e.g.
// a keyboard matrix scan advancing state); Write may side-effect (e.g.
// setting a column-select mask); Poll reports an asynchronous interrupt
// condition local to the port; Reset clears port state to power-on values.
type Port interface {
	Read() uint8
	Write(val uint8)
	Poll() bool
	Reset()
}
