package asm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/mipsim/isa"
)

// Opcode is one assembled source line.
type Opcode struct {
	LineNo int      // 1-based source line.
	Pc     uint32   // Text region offset of the word.
	Words  []string // Tokenized source line.
	Word   isa.Word // Encoded instruction.
}

// Program is the result of one assembly pass.
type Program struct {
	Opcodes     []Opcode
	Diagnostics []Diagnostic
}

// Runnable returns true if the pass produced at least one instruction and
// no diagnostics.
func (prog *Program) Runnable() bool {
	return len(prog.Diagnostics) == 0 && len(prog.Opcodes) > 0
}

// Err returns all diagnostics joined, or nil.
func (prog *Program) Err() error {
	errs := make([]error, len(prog.Diagnostics))
	for n, diag := range prog.Diagnostics {
		errs[n] = diag
	}
	return errors.Join(errs...)
}

// Debug returns the opcode at a program counter, or nil.
func (prog *Program) Debug(pc uint32) *Opcode {
	for n, op := range prog.Opcodes {
		if op.Pc == pc {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

// Listing formats the program as pc, word, disassembly and source text.
// A nil table selects isa.Default.
func (prog *Program) Listing(table *isa.Table) string {
	if table == nil {
		table = isa.Default
	}

	var text strings.Builder
	for _, op := range prog.Opcodes {
		disasm := "?"
		inst, err := table.Decode(op.Word)
		if err == nil {
			disasm = inst.String()
		}
		fmt.Fprintf(&text, "%04x: %08x  %-24v ; %d: %v\n", op.Pc, uint32(op.Word), disasm, op.LineNo, strings.Join(op.Words, " "))
	}
	return text.String()
}
