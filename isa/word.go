package isa

// Field positions and widths.
const (
	OPCODE_SHIFT = 26
	RS_SHIFT     = 21
	RT_SHIFT     = 16
	RD_SHIFT     = 11
	SHAMT_SHIFT  = 6
	FUNCT_SHIFT  = 0

	OPCODE_MASK = 0x3f
	REG_MASK    = 0x1f
	SHAMT_MASK  = 0x1f
	FUNCT_MASK  = 0x3f
	IMM_MASK    = 0xffff
)

// Word is an encoded 32-bit instruction.
type Word uint32

// MakeWordR packs an R-type instruction word.
func MakeWordR(opcode, rs, rt, rd, shamt, funct uint8) Word {
	return Word((uint32(opcode&OPCODE_MASK) << OPCODE_SHIFT) |
		(uint32(rs&REG_MASK) << RS_SHIFT) |
		(uint32(rt&REG_MASK) << RT_SHIFT) |
		(uint32(rd&REG_MASK) << RD_SHIFT) |
		(uint32(shamt&SHAMT_MASK) << SHAMT_SHIFT) |
		(uint32(funct&FUNCT_MASK) << FUNCT_SHIFT))
}

// MakeWordI packs an I-type instruction word. Only the low 16 bits of imm
// are kept.
func MakeWordI(opcode, rs, rt uint8, imm int32) Word {
	return Word((uint32(opcode&OPCODE_MASK) << OPCODE_SHIFT) |
		(uint32(rs&REG_MASK) << RS_SHIFT) |
		(uint32(rt&REG_MASK) << RT_SHIFT) |
		(uint32(imm) & IMM_MASK))
}

// Opcode returns the opcode field.
func (w Word) Opcode() uint8 {
	return uint8((w >> OPCODE_SHIFT) & OPCODE_MASK)
}

// Rs returns the rs field.
func (w Word) Rs() uint8 {
	return uint8((w >> RS_SHIFT) & REG_MASK)
}

// Rt returns the rt field.
func (w Word) Rt() uint8 {
	return uint8((w >> RT_SHIFT) & REG_MASK)
}

// Rd returns the rd field.
func (w Word) Rd() uint8 {
	return uint8((w >> RD_SHIFT) & REG_MASK)
}

// Shamt returns the shift amount field.
func (w Word) Shamt() uint8 {
	return uint8((w >> SHAMT_SHIFT) & SHAMT_MASK)
}

// Funct returns the function field.
func (w Word) Funct() uint8 {
	return uint8((w >> FUNCT_SHIFT) & FUNCT_MASK)
}

// Imm returns the 16-bit immediate, sign-extended to 32 bits.
func (w Word) Imm() int32 {
	return int32(int16(uint16(w & IMM_MASK)))
}
