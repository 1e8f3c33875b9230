// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/mipsim/internal"
	"github.com/ezrec/mipsim/io"
	"github.com/ezrec/mipsim/isa"
	"github.com/ezrec/mipsim/machine"
)

// Cpu is the execution engine for a program in a Machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Machine  *machine.Machine // Registers and memory.
	Table    *isa.Table       // Instruction set; isa.Default if nil.
	Console  io.Console       // Output of the print services.
	Services Services         // Service call dispatch table.

	State State  // Run state.
	Ticks int    // Instructions executed since the last Run.
	Fault *Fault // Set when State is STATE_FAULTED.
}

// NewCpu creates a CPU for a machine, printing to console.
func NewCpu(mach *machine.Machine, console io.Console) (cpu *Cpu) {
	cpu = &Cpu{
		Machine:  mach,
		Console:  console,
		Services: DefaultServices(),
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.Defines(_cpu_defines)
}

// table returns the instruction set in use.
func (cpu *Cpu) table() *isa.Table {
	if cpu.Table == nil {
		return isa.Default
	}
	return cpu.Table
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	return fmt.Sprintf("state: %v  ticks: %d\n%v", cpu.State, cpu.Ticks, cpu.Machine.String())
}

// Reset returns the CPU to idle. The machine is untouched.
func (cpu *Cpu) Reset() {
	cpu.State = STATE_IDLE
	cpu.Ticks = 0
	cpu.Fault = nil
}

// Start rewinds the program counter and enters the running state.
func (cpu *Cpu) Start() {
	cpu.Reset()
	cpu.Machine.Pc = 0
	cpu.State = STATE_RUNNING

	if cpu.Verbose {
		log.Printf("cpu: run %d instructions", cpu.Machine.Words())
	}
}

// Run executes the program from the start until it halts or faults. A
// fault is returned as a *Fault.
func (cpu *Cpu) Run() (err error) {
	cpu.Start()

	for done := false; !done; {
		done, err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Tick performs one fetch-decode-execute cycle, and reports whether the
// CPU has reached a terminal state.
func (cpu *Cpu) Tick() (done bool, err error) {
	mach := cpu.Machine

	if cpu.State != STATE_RUNNING {
		err = ErrNotRunning
		return
	}

	if mach.Pc >= mach.Length {
		done = cpu.halt()
		return
	}

	word, err := mach.Fetch()
	if err == nil {
		err = cpu.Execute(isa.Word(word))
	}
	if err != nil {
		cpu.Fault = &Fault{Pc: mach.Pc, Word: isa.Word(word), Err: err}
		cpu.State = STATE_FAULTED
		if cpu.Verbose {
			log.Printf("cpu: %v", cpu.Fault)
		}
		err = cpu.Fault
		done = true
		return
	}

	cpu.Ticks++
	mach.Pc += machine.WORD_SIZE

	if mach.Pc >= mach.Length {
		done = cpu.halt()
	}

	return
}

// halt enters the halted state.
func (cpu *Cpu) halt() bool {
	cpu.State = STATE_HALTED
	if cpu.Verbose {
		log.Printf("cpu: halted after %d instructions", cpu.Ticks)
	}
	return true
}

// Execute decodes and executes a single instruction word.
func (cpu *Cpu) Execute(word isa.Word) (err error) {
	inst, err := cpu.table().Decode(word)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %08x %v", cpu.Machine.Pc, uint32(word), inst)
	}

	if inst.Syscall {
		return cpu.Syscall()
	}

	if inst.Exec == nil {
		err = isa.ErrInstructionMalformed
		return
	}

	inst.Exec(&cpu.Machine.Registers, inst)

	return
}
