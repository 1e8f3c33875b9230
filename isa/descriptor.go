package isa

// Format is an instruction word layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
)

// Field names an operand slot of an instruction word.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_RS  = Field(0) // rs
	FIELD_RT  = Field(1) // rt
	FIELD_RD  = Field(2) // rd
	FIELD_IMM = Field(3) // imm
)

// IsRegister returns true if the field holds a register index.
func (fd Field) IsRegister() bool {
	return fd != FIELD_IMM
}

// RegisterFile is the register access needed to execute an instruction.
type RegisterFile interface {
	Get(index uint8) uint32
	Set(index uint8, value uint32)
}

// Descriptor describes one instruction: its mnemonic, layout, encoding and
// behaviour.
type Descriptor struct {
	Mnemonic string  // Source mnemonic.
	Format   Format  // Word layout.
	Opcode   uint8   // 6-bit opcode.
	Funct    uint8   // 6-bit function field of R-type words.
	Operands []Field // Source operand order; its length is the arity.
	Syscall  bool    // Set on the reserved service call.

	// Exec applies the instruction to the register file. Nil for the
	// service call, which is dispatched by the CPU.
	Exec func(regs RegisterFile, inst Instruction)
}

// Arity returns the number of source operands.
func (desc *Descriptor) Arity() int {
	return len(desc.Operands)
}
