package cpu

func iLDA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	c.A = val
	c.setZN(c.A)
	return addCrossPenalty(base, mode, crossed), nil
}

func iLDX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	c.X = val
	c.setZN(c.X)
	return addCrossPenalty(base, mode, crossed), nil
}

func iLDY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	c.Y = val
	c.setZN(c.Y)
	return addCrossPenalty(base, mode, crossed), nil
}

// store writes reg to mode's effective address. Store instructions never
// take the indexed page-crossing penalty; the 6502 always pays the worst
// case cycle count for them up front (reflected in the decode table's base
// cycle count), because the effective address must be computed in full
// before the write can be issued regardless of whether it crossed a page.
func store(c *Chip, reg uint8, mode AddrMode) {
	addr, _ := c.resolveAddr(mode)
	c.mem.Write(addr, reg)
}

func iSTA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	store(c, c.A, mode)
	return base, nil
}

func iSTX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	store(c, c.X, mode)
	return base, nil
}

func iSTY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	store(c, c.Y, mode)
	return base, nil
}

// iSTZ is a CMOS addition: store zero, used to clear memory without
// burning a register.
func iSTZ(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	store(c, 0, mode)
	return base, nil
}

func iTAX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.X = c.A
	c.setZN(c.X)
	return base, nil
}

func iTAY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.Y = c.A
	c.setZN(c.Y)
	return base, nil
}

func iTXA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.A = c.X
	c.setZN(c.A)
	return base, nil
}

func iTYA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.A = c.Y
	c.setZN(c.A)
	return base, nil
}

func iTSX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.X = c.S
	c.setZN(c.X)
	return base, nil
}

// iTXS does not touch N/Z: S is a stack offset, not a data register.
func iTXS(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.S = c.X
	return base, nil
}

func iNOP(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	// Multi-byte NOP encodings (used by several illegal NMOS opcodes and by
	// the CMOS reserved-opcode NOPs) still need to consume their operand
	// bytes so the following instruction decodes from the right PC.
	switch mode {
	case modeImmediate:
		c.fetch8()
	case modeZP, modeZPX:
		c.resolveAddr(mode)
	case modeAbsolute, modeAbsoluteX:
		_, crossed := c.resolveAddr(mode)
		return addCrossPenalty(base, mode, crossed), nil
	}
	return base, nil
}
