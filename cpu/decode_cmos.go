package cpu

func init() {
	type row struct {
		op     uint8
		fn     opFunc
		mode   AddrMode
		cycles uint8
	}
	rows := []row{
		// ADC (adds the CMOS-only zero-page-indirect mode)
		{0x69, iADC, modeImmediate, 2}, {0x65, iADC, modeZP, 3}, {0x75, iADC, modeZPX, 4},
		{0x6D, iADC, modeAbsolute, 4}, {0x7D, iADC, modeAbsoluteX, 4}, {0x79, iADC, modeAbsoluteY, 4},
		{0x61, iADC, modeIndirectX, 6}, {0x71, iADC, modeIndirectY, 5}, {0x72, iADC, modeZPIndirect, 5},
		// AND
		{0x29, iAND, modeImmediate, 2}, {0x25, iAND, modeZP, 3}, {0x35, iAND, modeZPX, 4},
		{0x2D, iAND, modeAbsolute, 4}, {0x3D, iAND, modeAbsoluteX, 4}, {0x39, iAND, modeAbsoluteY, 4},
		{0x21, iAND, modeIndirectX, 6}, {0x31, iAND, modeIndirectY, 5}, {0x32, iAND, modeZPIndirect, 5},
		// ASL
		{0x0A, iASL, modeAccumulator, 2}, {0x06, iASL, modeZP, 5}, {0x16, iASL, modeZPX, 6},
		{0x0E, iASL, modeAbsolute, 6}, {0x1E, iASL, modeAbsoluteX, 7},
		// Branches (plus CMOS-only BRA)
		{0x90, iBCC, modeRelative, 2}, {0xB0, iBCS, modeRelative, 2}, {0xF0, iBEQ, modeRelative, 2},
		{0x30, iBMI, modeRelative, 2}, {0xD0, iBNE, modeRelative, 2}, {0x10, iBPL, modeRelative, 2},
		{0x50, iBVC, modeRelative, 2}, {0x70, iBVS, modeRelative, 2}, {0x80, iBRA, modeRelative, 2},
		// BIT (adds zpx/absx/imm modes that don't exist on NMOS)
		{0x24, iBIT, modeZP, 3}, {0x2C, iBIT, modeAbsolute, 4},
		{0x34, iBIT, modeZPX, 4}, {0x3C, iBIT, modeAbsoluteX, 4}, {0x89, iBIT, modeImmediate, 2},
		// BRK
		{0x00, iBRK, modeImplied, 7},
		// Flags
		{0x18, iCLC, modeImplied, 2}, {0xD8, iCLD, modeImplied, 2}, {0x58, iCLI, modeImplied, 2},
		{0xB8, iCLV, modeImplied, 2}, {0x38, iSEC, modeImplied, 2}, {0xF8, iSED, modeImplied, 2},
		{0x78, iSEI, modeImplied, 2},
		// CMP/CPX/CPY
		{0xC9, iCMP, modeImmediate, 2}, {0xC5, iCMP, modeZP, 3}, {0xD5, iCMP, modeZPX, 4},
		{0xCD, iCMP, modeAbsolute, 4}, {0xDD, iCMP, modeAbsoluteX, 4}, {0xD9, iCMP, modeAbsoluteY, 4},
		{0xC1, iCMP, modeIndirectX, 6}, {0xD1, iCMP, modeIndirectY, 5}, {0xD2, iCMP, modeZPIndirect, 5},
		{0xE0, iCPX, modeImmediate, 2}, {0xE4, iCPX, modeZP, 3}, {0xEC, iCPX, modeAbsolute, 4},
		{0xC0, iCPY, modeImmediate, 2}, {0xC4, iCPY, modeZP, 3}, {0xCC, iCPY, modeAbsolute, 4},
		// DEC/DEX/DEY (plus accumulator form)
		{0x3A, iDEC, modeAccumulator, 2},
		{0xC6, iDEC, modeZP, 5}, {0xD6, iDEC, modeZPX, 6}, {0xCE, iDEC, modeAbsolute, 6}, {0xDE, iDEC, modeAbsoluteX, 7},
		{0xCA, iDEX, modeImplied, 2}, {0x88, iDEY, modeImplied, 2},
		// EOR
		{0x49, iEOR, modeImmediate, 2}, {0x45, iEOR, modeZP, 3}, {0x55, iEOR, modeZPX, 4},
		{0x4D, iEOR, modeAbsolute, 4}, {0x5D, iEOR, modeAbsoluteX, 4}, {0x59, iEOR, modeAbsoluteY, 4},
		{0x41, iEOR, modeIndirectX, 6}, {0x51, iEOR, modeIndirectY, 5}, {0x52, iEOR, modeZPIndirect, 5},
		// INC/INX/INY (plus accumulator form)
		{0x1A, iINC, modeAccumulator, 2},
		{0xE6, iINC, modeZP, 5}, {0xF6, iINC, modeZPX, 6}, {0xEE, iINC, modeAbsolute, 6}, {0xFE, iINC, modeAbsoluteX, 7},
		{0xE8, iINX, modeImplied, 2}, {0xC8, iINY, modeImplied, 2},
		// JMP/JSR (indirect bug fixed, costs an extra cycle; plus CMOS (abs,X) form)
		{0x4C, iJMP, modeAbsolute, 3}, {0x6C, iJMP, modeIndirect, 6}, {0x7C, iJMP, modeIndirectAbsX, 6},
		{0x20, iJSR, modeAbsolute, 6},
		// LDA/LDX/LDY
		{0xA9, iLDA, modeImmediate, 2}, {0xA5, iLDA, modeZP, 3}, {0xB5, iLDA, modeZPX, 4},
		{0xAD, iLDA, modeAbsolute, 4}, {0xBD, iLDA, modeAbsoluteX, 4}, {0xB9, iLDA, modeAbsoluteY, 4},
		{0xA1, iLDA, modeIndirectX, 6}, {0xB1, iLDA, modeIndirectY, 5}, {0xB2, iLDA, modeZPIndirect, 5},
		{0xA2, iLDX, modeImmediate, 2}, {0xA6, iLDX, modeZP, 3}, {0xB6, iLDX, modeZPY, 4},
		{0xAE, iLDX, modeAbsolute, 4}, {0xBE, iLDX, modeAbsoluteY, 4},
		{0xA0, iLDY, modeImmediate, 2}, {0xA4, iLDY, modeZP, 3}, {0xB4, iLDY, modeZPX, 4},
		{0xAC, iLDY, modeAbsolute, 4}, {0xBC, iLDY, modeAbsoluteX, 4},
		// LSR
		{0x4A, iLSR, modeAccumulator, 2}, {0x46, iLSR, modeZP, 5}, {0x56, iLSR, modeZPX, 6},
		{0x4E, iLSR, modeAbsolute, 6}, {0x5E, iLSR, modeAbsoluteX, 7},
		// NOP
		{0xEA, iNOP, modeImplied, 2},
		// ORA
		{0x09, iORA, modeImmediate, 2}, {0x05, iORA, modeZP, 3}, {0x15, iORA, modeZPX, 4},
		{0x0D, iORA, modeAbsolute, 4}, {0x1D, iORA, modeAbsoluteX, 4}, {0x19, iORA, modeAbsoluteY, 4},
		{0x01, iORA, modeIndirectX, 6}, {0x11, iORA, modeIndirectY, 5}, {0x12, iORA, modeZPIndirect, 5},
		// Stack (plus CMOS PHX/PHY/PLX/PLY)
		{0x48, iPHA, modeImplied, 3}, {0x08, iPHP, modeImplied, 3}, {0x68, iPLA, modeImplied, 4}, {0x28, iPLP, modeImplied, 4},
		{0xDA, iPHX, modeImplied, 3}, {0xFA, iPLX, modeImplied, 4}, {0x5A, iPHY, modeImplied, 3}, {0x7A, iPLY, modeImplied, 4},
		// ROL/ROR
		{0x2A, iROL, modeAccumulator, 2}, {0x26, iROL, modeZP, 5}, {0x36, iROL, modeZPX, 6},
		{0x2E, iROL, modeAbsolute, 6}, {0x3E, iROL, modeAbsoluteX, 7},
		{0x6A, iROR, modeAccumulator, 2}, {0x66, iROR, modeZP, 5}, {0x76, iROR, modeZPX, 6},
		{0x6E, iROR, modeAbsolute, 6}, {0x7E, iROR, modeAbsoluteX, 7},
		// RTI/RTS
		{0x40, iRTI, modeImplied, 6}, {0x60, iRTS, modeImplied, 6},
		// SBC
		{0xE9, iSBC, modeImmediate, 2}, {0xE5, iSBC, modeZP, 3}, {0xF5, iSBC, modeZPX, 4},
		{0xED, iSBC, modeAbsolute, 4}, {0xFD, iSBC, modeAbsoluteX, 4}, {0xF9, iSBC, modeAbsoluteY, 4},
		{0xE1, iSBC, modeIndirectX, 6}, {0xF1, iSBC, modeIndirectY, 5}, {0xF2, iSBC, modeZPIndirect, 5},
		// STA/STX/STY
		{0x85, iSTA, modeZP, 3}, {0x95, iSTA, modeZPX, 4}, {0x8D, iSTA, modeAbsolute, 4},
		{0x9D, iSTA, modeAbsoluteX, 5}, {0x99, iSTA, modeAbsoluteY, 5}, {0x81, iSTA, modeIndirectX, 6},
		{0x91, iSTA, modeIndirectY, 6}, {0x92, iSTA, modeZPIndirect, 5},
		{0x86, iSTX, modeZP, 3}, {0x96, iSTX, modeZPY, 4}, {0x8E, iSTX, modeAbsolute, 4},
		{0x84, iSTY, modeZP, 3}, {0x94, iSTY, modeZPX, 4}, {0x8C, iSTY, modeAbsolute, 4},
		// STZ (CMOS only)
		{0x64, iSTZ, modeZP, 3}, {0x74, iSTZ, modeZPX, 4}, {0x9C, iSTZ, modeAbsolute, 4}, {0x9E, iSTZ, modeAbsoluteX, 5},
		// TRB/TSB (CMOS only)
		{0x14, iTRB, modeZP, 5}, {0x1C, iTRB, modeAbsolute, 6},
		{0x04, iTSB, modeZP, 5}, {0x0C, iTSB, modeAbsolute, 6},
		// Transfers
		{0xAA, iTAX, modeImplied, 2}, {0xA8, iTAY, modeImplied, 2}, {0xBA, iTSX, modeImplied, 2},
		{0x8A, iTXA, modeImplied, 2}, {0x9A, iTXS, modeImplied, 2}, {0x98, iTYA, modeImplied, 2},
		// Reserved opcodes: every NMOS illegal/unstable slot the 65C02 does
		// not reuse for a new instruction decodes as some flavor of NOP
		// instead of a combined read-modify-write trick or a halt.
		{0x02, iNOP, modeImmediate, 2}, {0x22, iNOP, modeImmediate, 2}, {0x42, iNOP, modeImmediate, 2}, {0x62, iNOP, modeImmediate, 2},
		{0x82, iNOP, modeImmediate, 2}, {0xC2, iNOP, modeImmediate, 2}, {0xE2, iNOP, modeImmediate, 2},
		{0x44, iNOP, modeZP, 3},
		{0x54, iNOP, modeZPX, 4}, {0xD4, iNOP, modeZPX, 4}, {0xF4, iNOP, modeZPX, 4},
		{0x5C, iNOP, modeAbsolute, 8}, {0xDC, iNOP, modeAbsolute, 4}, {0xFC, iNOP, modeAbsolute, 4},
		{0xCB, iNOP, modeImplied, 1}, {0xDB, iNOP, modeImplied, 1},
		{0x03, iNOP, modeImplied, 1}, {0x13, iNOP, modeImplied, 1}, {0x23, iNOP, modeImplied, 1}, {0x33, iNOP, modeImplied, 1},
		{0x43, iNOP, modeImplied, 1}, {0x53, iNOP, modeImplied, 1}, {0x63, iNOP, modeImplied, 1}, {0x73, iNOP, modeImplied, 1},
		{0x83, iNOP, modeImplied, 1}, {0x93, iNOP, modeImplied, 1}, {0xA3, iNOP, modeImplied, 1}, {0xB3, iNOP, modeImplied, 1},
		{0xC3, iNOP, modeImplied, 1}, {0xD3, iNOP, modeImplied, 1}, {0xE3, iNOP, modeImplied, 1}, {0xF3, iNOP, modeImplied, 1},
		{0x0B, iNOP, modeImplied, 1}, {0x1B, iNOP, modeImplied, 1}, {0x2B, iNOP, modeImplied, 1}, {0x3B, iNOP, modeImplied, 1},
		{0x4B, iNOP, modeImplied, 1}, {0x5B, iNOP, modeImplied, 1}, {0x6B, iNOP, modeImplied, 1}, {0x7B, iNOP, modeImplied, 1},
		{0x8B, iNOP, modeImplied, 1}, {0x9B, iNOP, modeImplied, 1}, {0xAB, iNOP, modeImplied, 1}, {0xBB, iNOP, modeImplied, 1},
		{0xEB, iNOP, modeImplied, 1}, {0xFB, iNOP, modeImplied, 1},
	}
	for _, r := range rows {
		cmosTable[r.op] = opDef{fn: r.fn, mode: r.mode, cycles: r.cycles}
	}

	// RMB0-7/SMB0-7 occupy 0x07,0x17,...,0xF7 in steps of 0x10 (two
	// interleaved families sharing the low nibble: 0x_7 is RMB for the low
	// half of the opcode space, SMB for the high half).
	for bit := uint8(0); bit < 8; bit++ {
		rmbOp := bit*0x10 + 0x07
		smbOp := bit*0x10 + 0x87
		cmosTable[rmbOp] = opDef{fn: makeRMB(bit), mode: modeZP, cycles: 5}
		cmosTable[smbOp] = opDef{fn: makeSMB(bit), mode: modeZP, cycles: 5}
	}
	// BBR0-7/BBS0-7 occupy 0x0F,0x1F,...,0xFF in steps of 0x10.
	for bit := uint8(0); bit < 8; bit++ {
		bbrOp := bit*0x10 + 0x0F
		bbsOp := bit*0x10 + 0x8F
		cmosTable[bbrOp] = opDef{fn: makeBBR(bit), mode: modeZPRelative, cycles: 5}
		cmosTable[bbsOp] = opDef{fn: makeBBS(bit), mode: modeZPRelative, cycles: 5}
	}
}
