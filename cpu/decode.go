package cpu

// AddrMode enumerates the 6502/65C02 addressing modes. Each opDef pairs one
// of these with the instruction function that uses it to resolve its
// operand, mirroring the way the teacher pairs an addrXXX helper with each
// instruction in its 256-case switch; here the pairing is table-driven so
// the NMOS and CMOS decode tables can share instruction implementations
// instead of duplicating the switch twice.
type AddrMode int

const (
	modeImplied AddrMode = iota
	modeAccumulator
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
	modeIndirect      // JMP (abs) only.
	modeIndirectAbsX  // CMOS JMP (abs,X) only.
	modeRelative      // Branches.
	modeZPIndirect    // CMOS (zp) with no index, e.g. ORA (zp).
	modeZPRelative    // CMOS BBR/BBS: zp operand plus relative displacement.
)

// opFunc executes one instruction given its resolved addressing mode and
// base cycle count, returning the actual cycle count consumed (which may
// exceed base on a page-crossing penalty or a taken branch).
type opFunc func(c *Chip, mode AddrMode, base uint8) (uint8, error)

// opDef is one decode-table entry.
type opDef struct {
	fn     opFunc
	mode   AddrMode
	cycles uint8
}

// nmosTable and cmosTable are built in decode_nmos.go / decode_cmos.go.
var (
	nmosTable [256]opDef
	cmosTable [256]opDef
)
