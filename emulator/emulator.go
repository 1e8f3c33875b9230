// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"
	"iter"

	"github.com/ezrec/mipsim/asm"
	"github.com/ezrec/mipsim/cpu"
	"github.com/ezrec/mipsim/internal"
	mio "github.com/ezrec/mipsim/io"
	"github.com/ezrec/mipsim/machine"
)

// Emulator state. Machine + assembler + CPU + console.
type Emulator struct {
	Verbose   bool             // If set, enables verbose logging.
	Machine   *machine.Machine // Shared registers and memory.
	Assembler *asm.Assembler   // Assembler writing into Machine.
	*cpu.Cpu                   // Reference to the CPU simulation.
	Program   *asm.Program     // Listing of the last assembler pass.

	Record mio.Record // Default console.
}

// NewEmulator creates a new emulator, printing to its Record.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine:   machine.NewMachine(),
		Assembler: &asm.Assembler{},
		Program:   &asm.Program{},
	}

	emu.Cpu = cpu.NewCpu(emu.Machine, &emu.Record)

	for key, value := range emu.Defines() {
		emu.Assembler.Predefine(key, value)
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(machine.Defines(),
		emu.Cpu.Defines(),
	)
}

// Assemble a program, replacing the previous one. The program is runnable
// when there are no diagnostics and at least one instruction.
func (emu *Emulator) Assemble(lines []string) (runnable bool, diags []asm.Diagnostic) {
	emu.Assembler.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.Program = emu.Assembler.Assemble(emu.Machine, lines)

	return emu.Program.Runnable(), emu.Program.Diagnostics
}

// Parse assembles a program read from input.
func (emu *Emulator) Parse(input io.Reader) (runnable bool, diags []asm.Diagnostic, err error) {
	emu.Assembler.Verbose = emu.Verbose
	emu.Cpu.Reset()

	prog, err := emu.Assembler.Parse(emu.Machine, input)
	if err != nil {
		emu.Program = &asm.Program{}
		return
	}

	emu.Program = prog
	return prog.Runnable(), prog.Diagnostics, nil
}

// Runnable reports whether the last assembled program may be run.
func (emu *Emulator) Runnable() bool {
	return emu.Program.Runnable()
}

// LineNo returns the source line of the instruction at the program
// counter, or 0 if there is none.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Machine.Pc)
	if op == nil {
		return 0
	}
	return op.LineNo
}

// Run executes the assembled program to completion. A fault is returned
// as an *ErrRuntime naming its source line.
func (emu *Emulator) Run() (err error) {
	if !emu.Runnable() {
		err = ErrNotRunnable
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Record.Reset()

	err = emu.Cpu.Run()
	var fault *cpu.Fault
	if errors.As(err, &fault) {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
	}

	return
}

// Output returns what the default console printed during the last Run.
func (emu *Emulator) Output() string {
	return emu.Record.String()
}
