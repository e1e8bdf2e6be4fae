package cpu

// branch reads the relative displacement and, if taken, applies it to PC.
// Returns the extra cycles earned: +1 if taken, +1 more if the branch
// crosses a page boundary, matching real 6502 timing.
func (c *Chip) branch(taken bool) uint8 {
	disp := int8(c.fetch8())
	if !taken {
		return 0
	}
	old := c.PC
	c.PC = uint16(int32(c.PC) + int32(disp))
	extra := uint8(1)
	if !samePage(old, c.PC) {
		extra++
	}
	return extra
}

func iBCC(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_CARRY == 0), nil
}

func iBCS(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_CARRY != 0), nil
}

func iBEQ(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_ZERO != 0), nil
}

func iBNE(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_ZERO == 0), nil
}

func iBMI(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_NEGATIVE != 0), nil
}

func iBPL(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_NEGATIVE == 0), nil
}

func iBVC(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_OVERFLOW == 0), nil
}

func iBVS(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(c.P&P_OVERFLOW != 0), nil
}

// iBRA is a CMOS addition: unconditional relative branch.
func iBRA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	return base + c.branch(true), nil
}
