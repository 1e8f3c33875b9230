package isa

const (
	REG_ZERO = 0  // Hard-wired zero.
	REG_V0   = 2  // Service call selector.
	REG_A0   = 4  // Service call argument.
	REG_SP   = 29 // Stack pointer.
	REG_RA   = 31 // Return address.
)

var registerNames = [32]string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

var registerIndex = func() map[string]uint8 {
	index := make(map[string]uint8, len(registerNames))
	for n, name := range registerNames {
		index[name] = uint8(n)
	}
	return index
}()

// RegisterIndex returns the 5-bit index of a named register.
func RegisterIndex(name string) (index uint8, err error) {
	index, ok := registerIndex[name]
	if !ok {
		err = ErrRegister(name)
	}
	return
}

// RegisterName returns the conventional name of a register index.
func RegisterName(index uint8) string {
	return registerNames[index&REG_MASK]
}
