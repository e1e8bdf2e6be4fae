package cpu

// fetch8 reads the byte at PC and advances PC.
func (c *Chip) fetch8() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	return v
}

// fetch16 reads the little-endian word at PC and advances PC by 2.
func (c *Chip) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return (uint16(hi) << 8) | uint16(lo)
}

// samePage reports whether a and b lie in the same 256 byte page, the
// condition that determines the classic absolute/indirect-indexed
// page-crossing cycle penalty.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// resolveAddr computes the effective address for mode, consuming whatever
// operand bytes that mode requires from the instruction stream, and reports
// whether resolving it crossed a page boundary (the classic +1 cycle
// penalty on indexed reads). modeAccumulator, modeImplied, modeImmediate,
// modeRelative and modeIndirect (JMP only) are not handled here; those
// addressing forms are resolved directly by the instructions that use them.
func (c *Chip) resolveAddr(mode AddrMode) (uint16, bool) {
	switch mode {
	case modeZP:
		return uint16(c.fetch8()), false
	case modeZPX:
		return uint16(c.fetch8() + c.X), false
	case modeZPY:
		return uint16(c.fetch8() + c.Y), false
	case modeZPIndirect:
		zp := uint16(c.fetch8())
		lo := c.mem.Read(zp)
		hi := c.mem.Read((zp + 1) & 0x00FF)
		return (uint16(hi) << 8) | uint16(lo), false
	case modeAbsolute:
		return c.fetch16(), false
	case modeAbsoluteX:
		base := c.fetch16()
		addr := base + uint16(c.X)
		return addr, !samePage(base, addr)
	case modeAbsoluteY:
		base := c.fetch16()
		addr := base + uint16(c.Y)
		return addr, !samePage(base, addr)
	case modeIndirectX:
		zp := uint16(c.fetch8() + c.X)
		lo := c.mem.Read(zp & 0x00FF)
		hi := c.mem.Read((zp + 1) & 0x00FF)
		return (uint16(hi) << 8) | uint16(lo), false
	case modeIndirectY:
		zp := uint16(c.fetch8())
		lo := c.mem.Read(zp)
		hi := c.mem.Read((zp + 1) & 0x00FF)
		base := (uint16(hi) << 8) | uint16(lo)
		addr := base + uint16(c.Y)
		return addr, !samePage(base, addr)
	default:
		return 0, false
	}
}

// readOperand resolves mode (including Immediate and Accumulator, which
// resolveAddr does not handle) and returns the operand value read from it.
// Used by load-class instructions (LDA, ADC, AND, CMP, ...). crossed
// reports whether an indexed read crossed a page boundary.
func (c *Chip) readOperand(mode AddrMode) (val uint8, crossed bool) {
	switch mode {
	case modeImmediate:
		return c.fetch8(), false
	case modeAccumulator:
		return c.A, false
	default:
		addr, crossed := c.resolveAddr(mode)
		return c.mem.Read(addr), crossed
	}
}
