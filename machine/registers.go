package machine

import (
	"fmt"
)

const REGISTER_COUNT = 32

// Registers is the general purpose register file. Register 0 is hard-wired
// to zero.
type Registers [REGISTER_COUNT]uint32

// Get returns the value of a register.
func (r *Registers) Get(index uint8) uint32 {
	index &= REGISTER_COUNT - 1
	if index == 0 {
		return 0
	}
	return r[index]
}

// Set writes a register. Writes to register 0 are discarded.
func (r *Registers) Set(index uint8, value uint32) {
	index &= REGISTER_COUNT - 1
	if index == 0 {
		return
	}
	r[index] = value
}

// Reset zeroes all registers.
func (r *Registers) Reset() {
	clear(r[:])
}

// String dumps the register file, four registers per line.
func (r *Registers) String() (text string) {
	for n := range REGISTER_COUNT {
		text += fmt.Sprintf("r%-2d %04X_%04X", n, r.Get(uint8(n))>>16, r.Get(uint8(n))&0xffff)
		if n%4 == 3 {
			text += "\n"
		} else {
			text += "  "
		}
	}
	return
}
