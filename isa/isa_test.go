package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// regs is a minimal RegisterFile with a hard-wired zero register.
type regs [32]uint32

func (r *regs) Get(index uint8) uint32 {
	if index == 0 {
		return 0
	}
	return r[index]
}

func (r *regs) Set(index uint8, value uint32) {
	if index != 0 {
		r[index] = value
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range uint8(32) {
		name := RegisterName(n)
		index, err := RegisterIndex(name)
		assert.NoError(err, name)
		assert.Equal(n, index, name)
	}

	assert.Equal("$zero", RegisterName(REG_ZERO))
	assert.Equal("$v0", RegisterName(REG_V0))
	assert.Equal("$a0", RegisterName(REG_A0))
	assert.Equal("$ra", RegisterName(REG_RA))
}

func TestRegisterUnknown(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"$t10", "t0", "$", "", "$ZERO", "$8"} {
		_, err := RegisterIndex(name)
		assert.ErrorIs(err, ErrRegisterUnknown, name)
	}
}

func TestWordFields(t *testing.T) {
	assert := assert.New(t)

	w := MakeWordR(0x3f, 1, 2, 3, 4, 5)
	assert.Equal(uint8(0x3f), w.Opcode())
	assert.Equal(uint8(1), w.Rs())
	assert.Equal(uint8(2), w.Rt())
	assert.Equal(uint8(3), w.Rd())
	assert.Equal(uint8(4), w.Shamt())
	assert.Equal(uint8(5), w.Funct())

	w = MakeWordI(0x08, 31, 30, -1)
	assert.Equal(Word(0x23feffff), w)
	assert.Equal(int32(-1), w.Imm())

	w = MakeWordI(0x08, 0, 0, 0x7fff)
	assert.Equal(int32(0x7fff), w.Imm())

	w = MakeWordI(0x08, 0, 0, -0x8000)
	assert.Equal(int32(-0x8000), w.Imm())
}

func TestTableLookup(t *testing.T) {
	assert := assert.New(t)

	desc, err := Default.ByMnemonic("add")
	assert.NoError(err)
	assert.Equal(FORMAT_R, desc.Format)
	assert.Equal(uint8(0x20), desc.Opcode)
	assert.Equal(3, desc.Arity())

	same, err := Default.ByOpcode(0x20)
	assert.NoError(err)
	assert.Same(desc, same)

	desc, err = Default.ByMnemonic("addi")
	assert.NoError(err)
	assert.Equal(FORMAT_I, desc.Format)
	assert.Equal(uint8(0x08), desc.Opcode)

	_, err = Default.ByMnemonic("foobar")
	assert.ErrorIs(err, ErrMnemonicUnknown)
	assert.Contains(err.Error(), "foobar")

	_, err = Default.ByOpcode(0x3f)
	assert.ErrorIs(err, ErrOpcodeUnknown)

	sys, ok := Default.Syscall()
	assert.True(ok)
	assert.Equal("syscall", sys.Mnemonic)
	assert.Equal(0, sys.Arity())
	assert.Equal(uint8(SYSCALL_OPCODE), sys.Opcode)
}

func TestTableBijective(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for desc := range Default.All() {
		count++
		byName, err := Default.ByMnemonic(desc.Mnemonic)
		assert.NoError(err)
		byOp, err := Default.ByOpcode(desc.Opcode)
		assert.NoError(err)
		assert.Same(byName, byOp, desc.Mnemonic)
	}
	assert.Equal(len(descriptors), count)
}

func TestTableDuplicate(t *testing.T) {
	assert := assert.New(t)

	_, err := NewTable(
		Descriptor{Mnemonic: "a", Opcode: 1},
		Descriptor{Mnemonic: "a", Opcode: 2},
	)
	assert.ErrorIs(err, ErrMnemonicDuplicate)

	_, err = NewTable(
		Descriptor{Mnemonic: "a", Opcode: 1},
		Descriptor{Mnemonic: "b", Opcode: 1},
	)
	assert.ErrorIs(err, ErrOpcodeDuplicate)

	_, err = NewTable(Descriptor{Mnemonic: "a", Opcode: 0x40})
	assert.ErrorIs(err, ErrOpcodeRange)

	_, ok := (&Table{}).Syscall()
	assert.False(ok)
}

func TestEncodeDecodeAdd(t *testing.T) {
	assert := assert.New(t)

	desc, _ := Default.ByMnemonic("add")
	inst := Instruction{Descriptor: desc, Rd: 8, Rs: 9, Rt: 10}
	word := inst.Encode()

	assert.Equal(Word(0x812a4000), word)
	assert.Equal(desc.Opcode, word.Opcode())
	assert.Equal(uint8(9), word.Rs())
	assert.Equal(uint8(10), word.Rt())
	assert.Equal(uint8(8), word.Rd())

	decoded, err := Default.Decode(word)
	assert.NoError(err)
	assert.Equal("add", decoded.Mnemonic)
	assert.Equal(inst.Rs, decoded.Rs)
	assert.Equal(inst.Rt, decoded.Rt)
	assert.Equal(inst.Rd, decoded.Rd)
	assert.Equal("add $t0 $t1 $t2", decoded.String())
}

func TestEncodeDecodeAddi(t *testing.T) {
	assert := assert.New(t)

	desc, _ := Default.ByMnemonic("addi")

	table := [](struct {
		imm  int32
		word Word
		text string
	}){
		{5, 0x21280005, "addi $t0 $t1 5"},
		{-5, 0x2128fffb, "addi $t0 $t1 -5"},
		{-32768, 0x21288000, "addi $t0 $t1 -32768"},
		{32767, 0x21287fff, "addi $t0 $t1 32767"},
	}

	for _, entry := range table {
		inst := Instruction{Descriptor: desc, Rt: 8, Rs: 9, Imm: entry.imm}
		word := inst.Encode()
		assert.Equal(entry.word, word, entry.text)

		decoded, err := Default.Decode(word)
		assert.NoError(err, entry.text)
		assert.Equal(uint8(8), decoded.Rt, entry.text)
		assert.Equal(uint8(9), decoded.Rs, entry.text)
		assert.Equal(entry.imm, decoded.Imm, entry.text)
		assert.Equal(entry.text, decoded.String())
	}
}

func TestDecodeSyscall(t *testing.T) {
	assert := assert.New(t)

	inst, err := Default.Decode(SYSCALL_WORD)
	assert.NoError(err)
	assert.True(inst.Syscall)
	assert.Equal("syscall", inst.String())
	assert.Equal(Word(0x0000000c), inst.Encode())

	_, err = Default.Decode(SYSCALL_WORD | MakeWordR(0, 2, 0, 0, 0, 0))
	assert.ErrorIs(err, ErrInstructionMalformed)

	_, err = Default.Decode(0)
	assert.ErrorIs(err, ErrInstructionMalformed)
}

func TestDecodeMalformed(t *testing.T) {
	assert := assert.New(t)

	// add with a shift amount.
	_, err := Default.Decode(MakeWordR(0x20, 1, 2, 3, 1, 0))
	assert.ErrorIs(err, ErrInstructionMalformed)

	// add with a function field.
	_, err = Default.Decode(MakeWordR(0x20, 1, 2, 3, 0, 1))
	assert.ErrorIs(err, ErrInstructionMalformed)

	_, err = Default.Decode(0xffffffff)
	assert.ErrorIs(err, ErrOpcodeUnknown)
	var opErr ErrOpcode
	assert.True(errors.As(err, &opErr))
	assert.Equal(ErrOpcode(0x3f), opErr)
}

func TestExec(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mnemonic string
		a, b     uint32
		imm      int32
		expect   uint32
	}){
		{"add", 3, 4, 0, 7},
		{"add", 0xffffffff, 2, 0, 1},
		{"sub", 3, 4, 0, 0xffffffff},
		{"and", 0xf0f0, 0xff00, 0, 0xf000},
		{"or", 0xf0f0, 0xff00, 0, 0xfff0},
		{"xor", 0xf0f0, 0xff00, 0, 0x0ff0},
		{"nor", 0xf0f0f0f0, 0x0f000f00, 0, 0x000f000f},
		{"slt", 0xffffffff, 1, 0, 1},
		{"slt", 1, 0xffffffff, 0, 0},
		{"addi", 10, 0, -5, 5},
		{"addi", 10, 0, 5, 15},
		{"slti", 0xfffffff0, 0, -1, 1},
		{"slti", 3, 0, 2, 0},
	}

	for _, entry := range table {
		desc, err := Default.ByMnemonic(entry.mnemonic)
		assert.NoError(err)

		r := &regs{}
		r.Set(9, entry.a)
		r.Set(10, entry.b)
		inst := Instruction{Descriptor: desc, Rd: 8, Rs: 9, Rt: 10, Imm: entry.imm}
		if desc.Format == FORMAT_I {
			inst.Rt = 8
		}
		desc.Exec(r, inst)
		assert.Equal(entry.expect, r.Get(8), entry.mnemonic)
	}
}

func TestExecZeroDestination(t *testing.T) {
	assert := assert.New(t)

	desc, _ := Default.ByMnemonic("addi")
	r := &regs{}
	desc.Exec(r, Instruction{Descriptor: desc, Rt: REG_ZERO, Rs: REG_ZERO, Imm: 7})
	assert.Equal(uint32(0), r.Get(REG_ZERO))
}

func TestStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R", FORMAT_R.String())
	assert.Equal("I", FORMAT_I.String())
	assert.Equal("Format(7)", Format(7).String())
	assert.Equal("imm", FIELD_IMM.String())
	assert.Equal("rd", FIELD_RD.String())
	assert.Equal("<invalid>", Instruction{}.String())
}

func FuzzDecode(f *testing.F) {
	f.Add(uint32(0x812a4000))
	f.Add(uint32(0x2128fffb))
	f.Add(uint32(SYSCALL_WORD))
	f.Add(uint32(0xffffffff))

	f.Fuzz(func(t *testing.T, raw uint32) {
		assert := assert.New(t)

		inst, err := Default.Decode(Word(raw))
		if err != nil {
			assert.True(errors.Is(err, ErrOpcodeUnknown) || errors.Is(err, ErrInstructionMalformed))
			return
		}
		assert.Equal(Word(raw), inst.Encode())
	})
}
