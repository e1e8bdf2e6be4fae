package cpu

func iPHA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.push(c.A)
	return base, nil
}

func iPLA(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.A = c.pop()
	c.setZN(c.A)
	return base, nil
}

// iPHP always pushes with B and the always-1 bit set, matching the real
// 6502's handling of a software-visible push (B is forced on in the pushed
// copy whatever the live register holds).
func iPHP(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.push(c.P | P_B | P_S1)
	return base, nil
}

// iPLP restores P from the stack. The always-1 bit is forced back on; B is
// whatever bit 4 of the popped byte was (software can freely set/clear it
// in memory, it just has no hardware effect once restored).
func iPLP(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.P = c.pop() | P_S1
	return base, nil
}

// iPHX/iPHY/iPLX/iPLY are CMOS additions; NMOS software gets the same
// effect via A roundtrips (TXA/PHA or PLA/TAX), burning an extra register.
func iPHX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.push(c.X)
	return base, nil
}

func iPHY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.push(c.Y)
	return base, nil
}

func iPLX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.X = c.pop()
	c.setZN(c.X)
	return base, nil
}

func iPLY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.Y = c.pop()
	c.setZN(c.Y)
	return base, nil
}
