package isa

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction word.
type Instruction struct {
	*Descriptor
	Rs    uint8
	Rt    uint8
	Rd    uint8
	Shamt uint8
	Imm   int32 // Sign-extended immediate of I-type words.
}

// Get returns an operand field value.
func (inst Instruction) Get(field Field) (value int32) {
	switch field {
	case FIELD_RS:
		value = int32(inst.Rs)
	case FIELD_RT:
		value = int32(inst.Rt)
	case FIELD_RD:
		value = int32(inst.Rd)
	case FIELD_IMM:
		value = inst.Imm
	}
	return
}

// Set assigns an operand field value.
func (inst *Instruction) Set(field Field, value int32) {
	switch field {
	case FIELD_RS:
		inst.Rs = uint8(value) & REG_MASK
	case FIELD_RT:
		inst.Rt = uint8(value) & REG_MASK
	case FIELD_RD:
		inst.Rd = uint8(value) & REG_MASK
	case FIELD_IMM:
		inst.Imm = value
	}
}

// Encode packs the instruction into a word.
func (inst Instruction) Encode() (word Word) {
	switch inst.Format {
	case FORMAT_R:
		word = MakeWordR(inst.Opcode, inst.Rs, inst.Rt, inst.Rd, inst.Shamt, inst.Funct)
	case FORMAT_I:
		word = MakeWordI(inst.Opcode, inst.Rs, inst.Rt, inst.Imm)
	}
	return
}

// String returns the instruction in assembly syntax.
func (inst Instruction) String() string {
	if inst.Descriptor == nil {
		return "<invalid>"
	}

	words := []string{inst.Mnemonic}
	for _, field := range inst.Operands {
		if field.IsRegister() {
			words = append(words, RegisterName(uint8(inst.Get(field))))
		} else {
			words = append(words, fmt.Sprintf("%d", inst.Get(field)))
		}
	}

	return strings.Join(words, " ")
}
