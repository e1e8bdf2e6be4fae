package cpu

// rmw reads the current operand, writes it back unmodified (the dummy
// write NMOS silicon performs on every genuine read-modify-write cycle,
// which matters to hardware that latches on any write such as VIA/CIA
// shift and timer registers), then writes the value fn computes. CMOS
// fixed this quirk away, so the dummy write is skipped for CPU_CMOS.
// modeAccumulator never touches the bus and is handled by the caller
// directly.
func (c *Chip) rmw(mode AddrMode, fn func(uint8) uint8) {
	addr, _ := c.resolveAddr(mode)
	val := c.mem.Read(addr)
	if c.cpuType != CPU_CMOS {
		c.mem.Write(addr, val)
	}
	c.mem.Write(addr, fn(val))
}

func iASL(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	if mode == modeAccumulator {
		c.setCarry(c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return base, nil
	}
	c.rmw(mode, func(v uint8) uint8 {
		c.setCarry(v&0x80 != 0)
		v <<= 1
		c.setZN(v)
		return v
	})
	return base, nil
}

func iLSR(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	if mode == modeAccumulator {
		c.setCarry(c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return base, nil
	}
	c.rmw(mode, func(v uint8) uint8 {
		c.setCarry(v&0x01 != 0)
		v >>= 1
		c.setZN(v)
		return v
	})
	return base, nil
}

func iROL(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	if mode == modeAccumulator {
		in := c.carry()
		c.setCarry(c.A&0x80 != 0)
		c.A = (c.A << 1) | in
		c.setZN(c.A)
		return base, nil
	}
	c.rmw(mode, func(v uint8) uint8 {
		in := c.carry()
		c.setCarry(v&0x80 != 0)
		v = (v << 1) | in
		c.setZN(v)
		return v
	})
	return base, nil
}

func iROR(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	if mode == modeAccumulator {
		in := c.carry() << 7
		c.setCarry(c.A&0x01 != 0)
		c.A = (c.A >> 1) | in
		c.setZN(c.A)
		return base, nil
	}
	c.rmw(mode, func(v uint8) uint8 {
		in := c.carry() << 7
		c.setCarry(v&0x01 != 0)
		v = (v >> 1) | in
		c.setZN(v)
		return v
	})
	return base, nil
}

// iINC/iDEC cover both the memory forms and, on CMOS, the accumulator
// forms (INC A / DEC A, which NMOS has no encoding for).
func iINC(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	if mode == modeAccumulator {
		c.A++
		c.setZN(c.A)
		return base, nil
	}
	c.rmw(mode, func(v uint8) uint8 {
		v++
		c.setZN(v)
		return v
	})
	return base, nil
}

func iDEC(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	if mode == modeAccumulator {
		c.A--
		c.setZN(c.A)
		return base, nil
	}
	c.rmw(mode, func(v uint8) uint8 {
		v--
		c.setZN(v)
		return v
	})
	return base, nil
}

func iINX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.X++
	c.setZN(c.X)
	return base, nil
}

func iDEX(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.X--
	c.setZN(c.X)
	return base, nil
}

func iINY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.Y++
	c.setZN(c.Y)
	return base, nil
}

func iDEY(c *Chip, mode AddrMode, base uint8) (uint8, error) {
	c.Y--
	c.setZN(c.Y)
	return base, nil
}
