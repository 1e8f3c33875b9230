// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
)

// Machine is the register file, memory image and program bookkeeping shared
// by the assembler and the CPU. Only one of them may use it at a time.
type Machine struct {
	Registers Registers // Register file.
	Memory    Memory    // Memory image.
	Pc        uint32    // Byte offset of the next instruction in the text region.
	Length    uint32    // Bytes of program written to the text region.
}

// NewMachine creates a zeroed machine.
func NewMachine() *Machine {
	return &Machine{}
}

// Reset clears registers, memory, the program counter and the program.
func (m *Machine) Reset() {
	m.Registers.Reset()
	m.Memory.Reset()
	m.Pc = 0
	m.Length = 0
}

// AppendWord writes an instruction word at the end of the program.
func (m *Machine) AppendWord(word uint32) (err error) {
	if m.Length+WORD_SIZE > MAX_PROGRAM_SIZE {
		err = ErrProgramFull
		return
	}

	err = m.Memory.WriteWord(TEXT_BASE+m.Length, word)
	if err != nil {
		return
	}

	m.Length += WORD_SIZE
	return
}

// Fetch reads the instruction word at the program counter.
func (m *Machine) Fetch() (word uint32, err error) {
	if m.Pc+WORD_SIZE > MAX_PROGRAM_SIZE {
		err = &ErrAddress{Address: m.Pc, Err: ErrTextBoundary}
		return
	}

	return m.Memory.ReadWord(TEXT_BASE + m.Pc)
}

// Words returns the number of instructions in the program.
func (m *Machine) Words() int {
	return int(m.Length / WORD_SIZE)
}

// String returns the program counter and register file.
func (m *Machine) String() string {
	return fmt.Sprintf("pc: %04X  length: %04X\n%v", m.Pc, m.Length, m.Registers.String())
}
