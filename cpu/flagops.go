package cpu

func iCLC(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P &^= P_CARRY; return base, nil }
func iSEC(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P |= P_CARRY; return base, nil }
func iCLD(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P &^= P_DECIMAL; return base, nil }
func iSED(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P |= P_DECIMAL; return base, nil }
func iCLI(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P &^= P_INTERRUPT; return base, nil }
func iSEI(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P |= P_INTERRUPT; return base, nil }
func iCLV(c *Chip, mode AddrMode, base uint8) (uint8, error) { c.P &^= P_OVERFLOW; return base, nil }

func iBIT(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	res := c.A & val
	if res == 0 {
		c.P |= P_ZERO
	} else {
		c.P &^= P_ZERO
	}
	// Immediate-mode BIT (CMOS only) leaves N/V untouched: there is no
	// memory operand to source those bits from.
	if mode != modeImmediate {
		c.P = (c.P &^ (P_NEGATIVE | P_OVERFLOW)) | (val & (P_NEGATIVE | P_OVERFLOW))
	}
	return addCrossPenalty(base, mode, crossed), nil
}

// iTRB and iTSB are CMOS additions: test-and-reset/set bits, using A as a
// mask against a memory location. Both set Z from (A & mem) the same way
// BIT does, without touching N/V.
func iTRB(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	addr, _ := c.resolveAddr(mode)
	v := c.mem.Read(addr)
	if c.A&v == 0 {
		c.P |= P_ZERO
	} else {
		c.P &^= P_ZERO
	}
	c.mem.Write(addr, v&^c.A)
	return base, nil
}

func iTSB(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	addr, _ := c.resolveAddr(mode)
	v := c.mem.Read(addr)
	if c.A&v == 0 {
		c.P |= P_ZERO
	} else {
		c.P &^= P_ZERO
	}
	c.mem.Write(addr, v|c.A)
	return base, nil
}
