package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jmchacon/sys65/irq"
)

// Block implements a contiguous, fixed-size byte vector: RAM if Persistent
// is false, ROM if true. Reads and writes alias modulo the block size (the
// teacher's `ram` type documents this same masking behavior for any bank
// smaller than the full 64k address space).
type Block struct {
	mem        []uint8
	persistent bool
	resetWipe  bool
	parent     Bank
	databusVal uint8
}

// BlockDef configures a Block at construction time.
type BlockDef struct {
	// Size is the number of bytes in the block, from 1 up to 64k.
	Size int
	// Persistent marks this block as ROM: Write is a no-op and Reset never
	// touches contents.
	Persistent bool
	// ResetWipe, when true and Persistent is false, zeroes the block's
	// contents on Reset. When false the block's RAM survives Reset exactly
	// as real hardware RAM does (reset doesn't clear RAM; only power-on
	// does, and even then to random garbage).
	ResetWipe bool
	// ROM optionally supplies the initial contents (e.g. a loaded ROM
	// image). Shorter images are zero-padded; images longer than Size are a
	// construction error, matching §6 (ROM format).
	ROM []uint8
	// Parent, if non-nil, is the containing memory.Bank.
	Parent Bank
}

// NewBlock constructs a Block per BlockDef. Size must be positive and no
// bigger than the full 64k address space; a ROM image longer than Size is a
// construction error.
func NewBlock(d *BlockDef) (*Block, error) {
	if d.Size <= 0 {
		return nil, fmt.Errorf("invalid size: %d must be positive", d.Size)
	}
	if d.Size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", d.Size)
	}
	if len(d.ROM) > d.Size {
		return nil, fmt.Errorf("ROM image of %d bytes too large for %d byte block", len(d.ROM), d.Size)
	}
	b := &Block{
		mem:        make([]uint8, d.Size),
		persistent: d.Persistent,
		resetWipe:  d.ResetWipe,
		parent:     d.Parent,
	}
	copy(b.mem, d.ROM)
	return b, nil
}

// Read implements Bank. Address wraps modulo the block size.
func (b *Block) Read(addr uint16) uint8 {
	val := b.mem[int(addr)%len(b.mem)]
	b.databusVal = val
	return val
}

// Write implements Bank. A no-op for persistent (ROM) blocks.
func (b *Block) Write(addr uint16, val uint8) {
	b.databusVal = val
	if b.persistent {
		return
	}
	b.mem[int(addr)%len(b.mem)] = val
}

// PowerOn implements Bank. RAM is randomized to mimic real hardware
// power-on state; ROM contents (already loaded at construction) are left
// untouched.
func (b *Block) PowerOn() {
	if b.persistent {
		return
	}
	rand.Seed(time.Now().UnixNano())
	for i := range b.mem {
		b.mem[i] = uint8(rand.Intn(256))
	}
}

// Reset implements Bank. Only wipes (to zero) when configured to and never
// touches persistent (ROM) contents.
func (b *Block) Reset() {
	if b.persistent || !b.resetWipe {
		return
	}
	for i := range b.mem {
		b.mem[i] = 0x00
	}
}

// Poll implements Bank. A plain block never generates an interrupt.
func (b *Block) Poll(uint64) irq.Level {
	return irq.None
}

// Parent implements Bank.
func (b *Block) Parent() Bank {
	return b.parent
}

// DatabusVal implements Bank.
func (b *Block) DatabusVal() uint8 {
	return b.databusVal
}
