// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

const (
	SYSCALL_OPCODE = 0x00 // Reserved opcode of the service call.
	SYSCALL_FUNCT  = 0x0c // Function field of the service call.

	// The one valid service call word.
	SYSCALL_WORD = Word(SYSCALL_FUNCT << FUNCT_SHIFT)
)

var (
	operandsR = []Field{FIELD_RD, FIELD_RS, FIELD_RT}
	operandsI = []Field{FIELD_RT, FIELD_RS, FIELD_IMM}
)

// alu returns the Exec of a three register instruction.
func alu(op func(a, b uint32) uint32) func(RegisterFile, Instruction) {
	return func(regs RegisterFile, inst Instruction) {
		regs.Set(inst.Rd, op(regs.Get(inst.Rs), regs.Get(inst.Rt)))
	}
}

// aluImm returns the Exec of a register and immediate instruction.
func aluImm(op func(a, b uint32) uint32) func(RegisterFile, Instruction) {
	return func(regs RegisterFile, inst Instruction) {
		regs.Set(inst.Rt, op(regs.Get(inst.Rs), uint32(inst.Imm)))
	}
}

func opAdd(a, b uint32) uint32 { return a + b }
func opSub(a, b uint32) uint32 { return a - b }
func opAnd(a, b uint32) uint32 { return a & b }
func opOr(a, b uint32) uint32 { return a | b }
func opXor(a, b uint32) uint32 { return a ^ b }
func opNor(a, b uint32) uint32 { return ^(a | b) }

// opSlt is a signed less-than.
func opSlt(a, b uint32) uint32 {
	if int32(a) < int32(b) {
		return 1
	}
	return 0
}

// descriptors is the supported instruction set.
var descriptors = []Descriptor{
	{Mnemonic: "syscall", Format: FORMAT_R, Opcode: SYSCALL_OPCODE, Funct: SYSCALL_FUNCT, Syscall: true},
	{Mnemonic: "add", Format: FORMAT_R, Opcode: 0x20, Operands: operandsR, Exec: alu(opAdd)},
	{Mnemonic: "sub", Format: FORMAT_R, Opcode: 0x22, Operands: operandsR, Exec: alu(opSub)},
	{Mnemonic: "and", Format: FORMAT_R, Opcode: 0x24, Operands: operandsR, Exec: alu(opAnd)},
	{Mnemonic: "or", Format: FORMAT_R, Opcode: 0x25, Operands: operandsR, Exec: alu(opOr)},
	{Mnemonic: "xor", Format: FORMAT_R, Opcode: 0x26, Operands: operandsR, Exec: alu(opXor)},
	{Mnemonic: "nor", Format: FORMAT_R, Opcode: 0x27, Operands: operandsR, Exec: alu(opNor)},
	{Mnemonic: "slt", Format: FORMAT_R, Opcode: 0x2a, Operands: operandsR, Exec: alu(opSlt)},
	{Mnemonic: "addi", Format: FORMAT_I, Opcode: 0x08, Operands: operandsI, Exec: aluImm(opAdd)},
	{Mnemonic: "slti", Format: FORMAT_I, Opcode: 0x0a, Operands: operandsI, Exec: aluImm(opSlt)},
}

// Default is the table of the supported instruction set.
var Default = mustTable(descriptors...)

func mustTable(descs ...Descriptor) *Table {
	table, err := NewTable(descs...)
	if err != nil {
		panic(err)
	}
	return table
}
