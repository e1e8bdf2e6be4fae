package cpu

// iADC implements ADC: A = A + operand + carry, updating N/V/Z/C. Decimal
// mode is architecturally present but, per this module's scope, BCD
// adjustment is never performed (no target system this emulator covers
// relies on decimal arithmetic); the D flag is still freely settable and
// readable so software that merely probes or saves/restores it behaves
// correctly.
func iADC(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	sum := uint16(c.A) + uint16(val) + uint16(c.carry())
	res := uint8(sum)
	c.setOverflow(overflowCheck(c.A, val, res))
	c.setCarry(sum > 0xFF)
	c.A = res
	c.setZN(c.A)
	return addCrossPenalty(base, mode, crossed), nil
}

// iSBC implements SBC as ADC with the operand bitwise-inverted, the
// standard 6502 identity (A - M - (1-C) == A + ^M + C).
func iSBC(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	inv := ^val
	sum := uint16(c.A) + uint16(inv) + uint16(c.carry())
	res := uint8(sum)
	c.setOverflow(overflowCheck(c.A, inv, res))
	c.setCarry(sum > 0xFF)
	c.A = res
	c.setZN(c.A)
	return addCrossPenalty(base, mode, crossed), nil
}

func iAND(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	c.A &= val
	c.setZN(c.A)
	return addCrossPenalty(base, mode, crossed), nil
}

func iORA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	c.A |= val
	c.setZN(c.A)
	return addCrossPenalty(base, mode, crossed), nil
}

func iEOR(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	c.A ^= val
	c.setZN(c.A)
	return addCrossPenalty(base, mode, crossed), nil
}

// compare implements the shared CMP/CPX/CPY logic: reg - operand, flags
// only, no store.
func compare(c *Chip, reg uint8, mode AddrMode, base uint8) (uint8, error) {
	val, crossed := c.readOperand(mode)
	res := reg - val
	c.setCarry(reg >= val)
	c.setZN(res)
	return addCrossPenalty(base, mode, crossed), nil
}

func iCMP(c *Chip, mode AddrMode, base uint8) (uint8, error) { return compare(c, c.A, mode, base) }
func iCPX(c *Chip, mode AddrMode, base uint8) (uint8, error) { return compare(c, c.X, mode, base) }
func iCPY(c *Chip, mode AddrMode, base uint8) (uint8, error) { return compare(c, c.Y, mode, base) }

// addCrossPenalty adds the classic +1 cycle for an indexed read that
// crossed a page boundary. Only the indexed/indirect-indexed read modes are
// eligible; the caller is trusted to only pass a mode/crossed pair that
// came from resolveAddr or readOperand.
func addCrossPenalty(base uint8, mode AddrMode, crossed bool) uint8 {
	if !crossed {
		return base
	}
	switch mode {
	case modeAbsoluteX, modeAbsoluteY, modeIndirectY:
		return base + 1
	default:
		return base
	}
}
