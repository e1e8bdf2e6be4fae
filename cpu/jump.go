package cpu

func iJMP(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	switch mode {
	case modeAbsolute:
		c.PC = c.fetch16()
		return base, nil
	case modeIndirect:
		ptr := c.fetch16()
		// The classic NMOS bug: if the low byte of ptr is 0xFF, the high
		// byte is fetched from ptr with its low byte wrapped to 0x00 of the
		// SAME page rather than incrementing into the next page. CMOS
		// fixed this (it costs CMOS one extra cycle to do so, already
		// reflected in the CMOS decode table's base cycle count).
		hiAddr := ptr + 1
		if c.cpuType != CPU_CMOS && ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		}
		lo := c.mem.Read(ptr)
		hi := c.mem.Read(hiAddr)
		c.PC = (uint16(hi) << 8) | uint16(lo)
		return base, nil
	case modeIndirectAbsX:
		// CMOS-only JMP (abs,X): index is applied before the indirection,
		// so the NMOS page-wrap bug above cannot occur.
		base16 := c.fetch16()
		ptr := base16 + uint16(c.X)
		lo := c.mem.Read(ptr)
		hi := c.mem.Read(ptr + 1)
		c.PC = (uint16(hi) << 8) | uint16(lo)
		return base, nil
	default:
		return 0, InvalidCPUState{Reason: "JMP with unsupported addressing mode"}
	}
}

func iJSR(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	target := c.fetch16()
	// The 6502 pushes the address of the last byte of the JSR instruction,
	// not the address of the following instruction; RTS compensates by
	// incrementing after the pop.
	c.push16(c.PC - 1)
	c.PC = target
	return base, nil
}

func iRTS(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.PC = c.pop16() + 1
	return base, nil
}

func iRTI(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.P = c.pop() | P_S1
	c.P &^= P_B
	c.PC = c.pop16()
	return base, nil
}

// iBRK implements the software interrupt. Unlike a hardware IRQ/NMI entry,
// BRK pushes PC+2 (skipping a signature/reason byte following the opcode)
// and pushes P with B set. CMOS additionally clears the Decimal flag on
// entry, a documented 65C02 fix NMOS never received.
func iBRK(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.PC++ // Skip the signature byte.
	c.push16(c.PC)
	c.push(c.P | P_B | P_S1)
	c.P |= P_INTERRUPT
	if c.cpuType == CPU_CMOS {
		c.P &^= P_DECIMAL
	}
	lo := c.mem.Read(IRQ_VECTOR)
	hi := c.mem.Read(IRQ_VECTOR + 1)
	c.PC = (uint16(hi) << 8) | uint16(lo)
	return base, nil
}
