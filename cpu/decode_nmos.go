package cpu

// iHLT implements the NMOS STP/KIL/JAM opcodes: the bus locks up and the
// CPU cannot be restarted except by Reset.
func iHLT(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return 0, HaltOpcode{Opcode: c.lastOp, PC: c.PC - 1}
}

func init() {
	type row struct {
		op     uint8
		fn     opFunc
		mode   AddrMode
		cycles uint8
	}
	rows := []row{
		// ADC
		{0x69, iADC, modeImmediate, 2}, {0x65, iADC, modeZP, 3}, {0x75, iADC, modeZPX, 4},
		{0x6D, iADC, modeAbsolute, 4}, {0x7D, iADC, modeAbsoluteX, 4}, {0x79, iADC, modeAbsoluteY, 4},
		{0x61, iADC, modeIndirectX, 6}, {0x71, iADC, modeIndirectY, 5},
		// AND
		{0x29, iAND, modeImmediate, 2}, {0x25, iAND, modeZP, 3}, {0x35, iAND, modeZPX, 4},
		{0x2D, iAND, modeAbsolute, 4}, {0x3D, iAND, modeAbsoluteX, 4}, {0x39, iAND, modeAbsoluteY, 4},
		{0x21, iAND, modeIndirectX, 6}, {0x31, iAND, modeIndirectY, 5},
		// ASL
		{0x0A, iASL, modeAccumulator, 2}, {0x06, iASL, modeZP, 5}, {0x16, iASL, modeZPX, 6},
		{0x0E, iASL, modeAbsolute, 6}, {0x1E, iASL, modeAbsoluteX, 7},
		// Branches
		{0x90, iBCC, modeRelative, 2}, {0xB0, iBCS, modeRelative, 2}, {0xF0, iBEQ, modeRelative, 2},
		{0x30, iBMI, modeRelative, 2}, {0xD0, iBNE, modeRelative, 2}, {0x10, iBPL, modeRelative, 2},
		{0x50, iBVC, modeRelative, 2}, {0x70, iBVS, modeRelative, 2},
		// BIT
		{0x24, iBIT, modeZP, 3}, {0x2C, iBIT, modeAbsolute, 4},
		// BRK
		{0x00, iBRK, modeImplied, 7},
		// Flags
		{0x18, iCLC, modeImplied, 2}, {0xD8, iCLD, modeImplied, 2}, {0x58, iCLI, modeImplied, 2},
		{0xB8, iCLV, modeImplied, 2}, {0x38, iSEC, modeImplied, 2}, {0xF8, iSED, modeImplied, 2},
		{0x78, iSEI, modeImplied, 2},
		// CMP/CPX/CPY
		{0xC9, iCMP, modeImmediate, 2}, {0xC5, iCMP, modeZP, 3}, {0xD5, iCMP, modeZPX, 4},
		{0xCD, iCMP, modeAbsolute, 4}, {0xDD, iCMP, modeAbsoluteX, 4}, {0xD9, iCMP, modeAbsoluteY, 4},
		{0xC1, iCMP, modeIndirectX, 6}, {0xD1, iCMP, modeIndirectY, 5},
		{0xE0, iCPX, modeImmediate, 2}, {0xE4, iCPX, modeZP, 3}, {0xEC, iCPX, modeAbsolute, 4},
		{0xC0, iCPY, modeImmediate, 2}, {0xC4, iCPY, modeZP, 3}, {0xCC, iCPY, modeAbsolute, 4},
		// DEC/DEX/DEY
		{0xC6, iDEC, modeZP, 5}, {0xD6, iDEC, modeZPX, 6}, {0xCE, iDEC, modeAbsolute, 6}, {0xDE, iDEC, modeAbsoluteX, 7},
		{0xCA, iDEX, modeImplied, 2}, {0x88, iDEY, modeImplied, 2},
		// EOR
		{0x49, iEOR, modeImmediate, 2}, {0x45, iEOR, modeZP, 3}, {0x55, iEOR, modeZPX, 4},
		{0x4D, iEOR, modeAbsolute, 4}, {0x5D, iEOR, modeAbsoluteX, 4}, {0x59, iEOR, modeAbsoluteY, 4},
		{0x41, iEOR, modeIndirectX, 6}, {0x51, iEOR, modeIndirectY, 5},
		// INC/INX/INY
		{0xE6, iINC, modeZP, 5}, {0xF6, iINC, modeZPX, 6}, {0xEE, iINC, modeAbsolute, 6}, {0xFE, iINC, modeAbsoluteX, 7},
		{0xE8, iINX, modeImplied, 2}, {0xC8, iINY, modeImplied, 2},
		// JMP/JSR
		{0x4C, iJMP, modeAbsolute, 3}, {0x6C, iJMP, modeIndirect, 5}, {0x20, iJSR, modeAbsolute, 6},
		// LDA/LDX/LDY
		{0xA9, iLDA, modeImmediate, 2}, {0xA5, iLDA, modeZP, 3}, {0xB5, iLDA, modeZPX, 4},
		{0xAD, iLDA, modeAbsolute, 4}, {0xBD, iLDA, modeAbsoluteX, 4}, {0xB9, iLDA, modeAbsoluteY, 4},
		{0xA1, iLDA, modeIndirectX, 6}, {0xB1, iLDA, modeIndirectY, 5},
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
		{0x01, iORA, modeIndirectX, 6}, {0x11, iORA, modeIndirectY, 5},
		// Stack
		{0x48, iPHA, modeImplied, 3}, {0x08, iPHP, modeImplied, 3}, {0x68, iPLA, modeImplied, 4}, {0x28, iPLP, modeImplied, 4},
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
		{0xE1, iSBC, modeIndirectX, 6}, {0xF1, iSBC, modeIndirectY, 5},
		{0xEB, iSBC, modeImmediate, 2}, // Illegal duplicate encoding.
		// STA/STX/STY
		{0x85, iSTA, modeZP, 3}, {0x95, iSTA, modeZPX, 4}, {0x8D, iSTA, modeAbsolute, 4},
		{0x9D, iSTA, modeAbsoluteX, 5}, {0x99, iSTA, modeAbsoluteY, 5}, {0x81, iSTA, modeIndirectX, 6}, {0x91, iSTA, modeIndirectY, 6},
		{0x86, iSTX, modeZP, 3}, {0x96, iSTX, modeZPY, 4}, {0x8E, iSTX, modeAbsolute, 4},
		{0x84, iSTY, modeZP, 3}, {0x94, iSTY, modeZPX, 4}, {0x8C, iSTY, modeAbsolute, 4},
		// Transfers
		{0xAA, iTAX, modeImplied, 2}, {0xA8, iTAY, modeImplied, 2}, {0xBA, iTSX, modeImplied, 2},
		{0x8A, iTXA, modeImplied, 2}, {0x9A, iTXS, modeImplied, 2}, {0x98, iTYA, modeImplied, 2},

		// --- NMOS illegal opcodes ---
		{0x07, iSLO, modeZP, 5}, {0x17, iSLO, modeZPX, 6}, {0x0F, iSLO, modeAbsolute, 6},
		{0x1F, iSLO, modeAbsoluteX, 7}, {0x1B, iSLO, modeAbsoluteY, 7}, {0x03, iSLO, modeIndirectX, 8}, {0x13, iSLO, modeIndirectY, 8},
		{0x27, iRLA, modeZP, 5}, {0x37, iRLA, modeZPX, 6}, {0x2F, iRLA, modeAbsolute, 6},
		{0x3F, iRLA, modeAbsoluteX, 7}, {0x3B, iRLA, modeAbsoluteY, 7}, {0x23, iRLA, modeIndirectX, 8}, {0x33, iRLA, modeIndirectY, 8},
		{0x47, iSRE, modeZP, 5}, {0x57, iSRE, modeZPX, 6}, {0x4F, iSRE, modeAbsolute, 6},
		{0x5F, iSRE, modeAbsoluteX, 7}, {0x5B, iSRE, modeAbsoluteY, 7}, {0x43, iSRE, modeIndirectX, 8}, {0x53, iSRE, modeIndirectY, 8},
		{0x67, iRRA, modeZP, 5}, {0x77, iRRA, modeZPX, 6}, {0x6F, iRRA, modeAbsolute, 6},
		{0x7F, iRRA, modeAbsoluteX, 7}, {0x7B, iRRA, modeAbsoluteY, 7}, {0x63, iRRA, modeIndirectX, 8}, {0x73, iRRA, modeIndirectY, 8},
		{0x87, iSAX, modeZP, 3}, {0x97, iSAX, modeZPY, 4}, {0x8F, iSAX, modeAbsolute, 4}, {0x83, iSAX, modeIndirectX, 6},
		{0xA7, iLAX, modeZP, 3}, {0xB7, iLAX, modeZPY, 4}, {0xAF, iLAX, modeAbsolute, 4},
		{0xBF, iLAX, modeAbsoluteY, 4}, {0xA3, iLAX, modeIndirectX, 6}, {0xB3, iLAX, modeIndirectY, 5},
		{0xC7, iDCP, modeZP, 5}, {0xD7, iDCP, modeZPX, 6}, {0xCF, iDCP, modeAbsolute, 6},
		{0xDF, iDCP, modeAbsoluteX, 7}, {0xDB, iDCP, modeAbsoluteY, 7}, {0xC3, iDCP, modeIndirectX, 8}, {0xD3, iDCP, modeIndirectY, 8},
		{0xE7, iISC, modeZP, 5}, {0xF7, iISC, modeZPX, 6}, {0xEF, iISC, modeAbsolute, 6},
		{0xFF, iISC, modeAbsoluteX, 7}, {0xFB, iISC, modeAbsoluteY, 7}, {0xE3, iISC, modeIndirectX, 8}, {0xF3, iISC, modeIndirectY, 8},
		{0x0B, iANC, modeImmediate, 2}, {0x2B, iANC, modeImmediate, 2},
		{0x4B, iALR, modeImmediate, 2}, {0x6B, iARR, modeImmediate, 2}, {0xCB, iAXS, modeImmediate, 2}, {0x8B, iXAA, modeImmediate, 2}, {0xAB, iOAL, modeImmediate, 2},
		{0x93, iAHX, modeIndirectY, 6}, {0x9F, iAHX, modeAbsoluteY, 5},
		{0x9C, iSHY, modeAbsoluteX, 5}, {0x9E, iSHX, modeAbsoluteY, 5}, {0x9B, iTAS, modeAbsoluteY, 5}, {0xBB, iLAS, modeAbsoluteY, 4},
		// Illegal NOPs.
		{0x1A, iNOP, modeImplied, 2}, {0x3A, iNOP, modeImplied, 2}, {0x5A, iNOP, modeImplied, 2},
		{0x7A, iNOP, modeImplied, 2}, {0xDA, iNOP, modeImplied, 2}, {0xFA, iNOP, modeImplied, 2},
		{0x80, iNOP, modeImmediate, 2}, {0x82, iNOP, modeImmediate, 2}, {0x89, iNOP, modeImmediate, 2},
		{0xC2, iNOP, modeImmediate, 2}, {0xE2, iNOP, modeImmediate, 2},
		{0x04, iNOP, modeZP, 3}, {0x44, iNOP, modeZP, 3}, {0x64, iNOP, modeZP, 3},
		{0x14, iNOP, modeZPX, 4}, {0x34, iNOP, modeZPX, 4}, {0x54, iNOP, modeZPX, 4},
		{0x74, iNOP, modeZPX, 4}, {0xD4, iNOP, modeZPX, 4}, {0xF4, iNOP, modeZPX, 4},
		{0x0C, iNOP, modeAbsolute, 4},
		{0x1C, iNOP, modeAbsoluteX, 4}, {0x3C, iNOP, modeAbsoluteX, 4}, {0x5C, iNOP, modeAbsoluteX, 4},
		{0x7C, iNOP, modeAbsoluteX, 4}, {0xDC, iNOP, modeAbsoluteX, 4}, {0xFC, iNOP, modeAbsoluteX, 4},
		// HLT/KIL/JAM.
		{0x02, iHLT, modeImplied, 0}, {0x12, iHLT, modeImplied, 0}, {0x22, iHLT, modeImplied, 0}, {0x32, iHLT, modeImplied, 0},
		{0x42, iHLT, modeImplied, 0}, {0x52, iHLT, modeImplied, 0}, {0x62, iHLT, modeImplied, 0}, {0x72, iHLT, modeImplied, 0},
		{0x92, iHLT, modeImplied, 0}, {0xB2, iHLT, modeImplied, 0}, {0xD2, iHLT, modeImplied, 0}, {0xF2, iHLT, modeImplied, 0},
	}
	for _, r := range rows {
		nmosTable[r.op] = opDef{fn: r.fn, mode: r.mode, cycles: r.cycles}
	}
}
