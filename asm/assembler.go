// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"github.com/ezrec/mipsim/isa"
	"github.com/ezrec/mipsim/machine"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the MIPS subset.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Table   *isa.Table // Instruction set; isa.Default if nil.

	predefine map[string]string // Predefines
	equate    map[string]string // Equates visible to $(...) expressions.
	data      bool              // Set while in the .data segment.
}

// Predefine defines a constant for $(...) expressions, or redefines it.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// table returns the instruction set in use.
func (asm *Assembler) table() *isa.Table {
	if asm.Table == nil {
		return isa.Default
	}
	return asm.Table
}

// reset prepares a new pass.
func (asm *Assembler) reset(mach *machine.Machine) {
	mach.Reset()
	asm.data = false
	asm.equate = maps.Clone(sysEquate)
	maps.Copy(asm.equate, asm.predefine)
}

// Parse assembles lines read from input into the machine's text region.
// The returned error only reports a failure to read input.
func (asm *Assembler) Parse(mach *machine.Machine, input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = asm.Assemble(mach, lines)
	return
}

// Assemble resets the machine, then assembles every line into its text
// region. Diagnostics for all failing lines are in the returned Program.
func (asm *Assembler) Assemble(mach *machine.Machine, lines []string) (prog *Program) {
	asm.reset(mach)

	prog = &Program{}
	for n, text := range lines {
		lineno := n + 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		op, diag := asm.parseLine(mach, text, lineno)
		if diag != nil {
			if asm.Verbose {
				log.Printf("%v", diag)
			}
			prog.Diagnostics = append(prog.Diagnostics, *diag)
			continue
		}
		if op != nil {
			prog.Opcodes = append(prog.Opcodes, *op)
		}
	}

	return
}

// splitWords tokenizes on whitespace and commas. A comma must separate two
// words; empty fields are ErrOperandEmpty.
func splitWords(line string) (words []string, err error) {
	for n, part := range strings.Split(line, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			err = ErrOperandEmpty(n)
		}
		words = append(words, fields...)
	}
	return
}

// parseLine assembles a single line. Both results are nil for lines that
// emit nothing.
func (asm *Assembler) parseLine(mach *machine.Machine, text string, lineno int) (op *Opcode, diag *Diagnostic) {
	fail := func(kind Kind, err error) (*Opcode, *Diagnostic) {
		return nil, &Diagnostic{LineNo: lineno, Line: text, Kind: kind, Err: err}
	}

	line, _, _ := strings.Cut(text, "#")
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	words, sepErr := splitWords(line)
	if len(words) == 0 {
		if asm.data {
			return
		}
		return fail(KIND_SYNTAX, sepErr)
	}

	if strings.HasPrefix(words[0], ".") {
		switch words[0] {
		case ".text":
			asm.data = false
		case ".data":
			asm.data = true
		default:
			if asm.data {
				return
			}
			return fail(KIND_SYNTAX, ErrDirective(words[0]))
		}
		if len(words) > 1 || sepErr != nil {
			return fail(KIND_SYNTAX, ErrDirectiveSyntax)
		}
		return
	}

	// Static data is not assembled.
	if asm.data {
		return
	}

	desc, err := asm.table().ByMnemonic(words[0])
	if err != nil {
		return fail(KIND_SYNTAX, err)
	}

	var errs ErrOperands

	asm.equate["LINENO"] = strconv.Itoa(lineno)
	expanded, exprErrs := asm.expandExpressions(line)
	errs = append(errs, exprErrs...)
	if expanded != line {
		words, sepErr = splitWords(expanded)
	}
	if sepErr != nil {
		return fail(KIND_SYNTAX, sepErr)
	}

	args := words[1:]
	if len(args) != desc.Arity() {
		return fail(KIND_ARITY, ErrArity{Mnemonic: desc.Mnemonic, Want: desc.Arity(), Got: len(args)})
	}

	inst := isa.Instruction{Descriptor: desc}
	for n, field := range desc.Operands {
		var value int32
		if field.IsRegister() {
			var index uint8
			index, err = isa.RegisterIndex(args[n])
			value = int32(index)
		} else {
			value, err = parseImmediate(args[n])
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		inst.Set(field, value)
	}
	if len(errs) > 0 {
		return fail(KIND_OPERAND, errs)
	}

	word := inst.Encode()
	pc := mach.Length
	err = mach.AppendWord(uint32(word))
	if err != nil {
		return fail(KIND_CAPACITY, err)
	}

	op = &Opcode{LineNo: lineno, Pc: pc, Words: words, Word: word}
	return
}

// parseImmediate parses a base-10 signed 16-bit immediate.
func parseImmediate(word string) (value int32, err error) {
	v64, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrImmediateRange(word)
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	value = int32(v64)
	return
}
