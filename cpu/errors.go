package cpu

import "fmt"

// InvalidCPUState represents an invalid CPU state in the emulator (a
// construction-time misconfiguration or an internal precondition violated
// during decode). Carried from the teacher's error type of the same name.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode represents an NMOS illegal opcode (STP/KIL/JAM) that halts the
// CPU. Tick() returns this and the system handle becomes unusable for
// further ticks until Reset.
type HaltOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed at 0x%.4X", e.Opcode, e.PC)
}
