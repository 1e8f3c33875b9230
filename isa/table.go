package isa

import (
	"errors"
	"iter"
	"slices"
)

// Table is a read-only registry of descriptors, indexed by mnemonic and by
// opcode.
type Table struct {
	order      []*Descriptor
	byMnemonic map[string]*Descriptor
	byOpcode   map[uint8]*Descriptor
}

// NewTable builds a table. Every mnemonic and every opcode must be unique.
func NewTable(descs ...Descriptor) (table *Table, err error) {
	t := &Table{
		byMnemonic: make(map[string]*Descriptor, len(descs)),
		byOpcode:   make(map[uint8]*Descriptor, len(descs)),
	}

	descs = slices.Clone(descs)
	for n := range descs {
		desc := &descs[n]
		if desc.Opcode > OPCODE_MASK {
			err = errors.Join(ErrOpcodeRange, ErrOpcode(desc.Opcode))
			return
		}
		if _, ok := t.byMnemonic[desc.Mnemonic]; ok {
			err = errors.Join(ErrMnemonicDuplicate, ErrMnemonic(desc.Mnemonic))
			return
		}
		if _, ok := t.byOpcode[desc.Opcode]; ok {
			err = errors.Join(ErrOpcodeDuplicate, ErrOpcode(desc.Opcode))
			return
		}
		t.byMnemonic[desc.Mnemonic] = desc
		t.byOpcode[desc.Opcode] = desc
		t.order = append(t.order, desc)
	}

	table = t
	return
}

// ByMnemonic looks up a descriptor by mnemonic.
func (t *Table) ByMnemonic(mnemonic string) (desc *Descriptor, err error) {
	desc, ok := t.byMnemonic[mnemonic]
	if !ok {
		err = ErrMnemonic(mnemonic)
	}
	return
}

// ByOpcode looks up a descriptor by opcode.
func (t *Table) ByOpcode(opcode uint8) (desc *Descriptor, err error) {
	desc, ok := t.byOpcode[opcode]
	if !ok {
		err = ErrOpcode(opcode)
	}
	return
}

// Syscall returns the reserved service call descriptor, if any.
func (t *Table) Syscall() (desc *Descriptor, ok bool) {
	for _, desc = range t.order {
		if desc.Syscall {
			return desc, true
		}
	}
	return nil, false
}

// All iterates the descriptors in registration order.
func (t *Table) All() iter.Seq[*Descriptor] {
	return slices.Values(t.order)
}

// Decode splits a word into its fields according to its descriptor.
func (t *Table) Decode(word Word) (inst Instruction, err error) {
	desc, err := t.ByOpcode(word.Opcode())
	if err != nil {
		return
	}

	inst = Instruction{Descriptor: desc, Rs: word.Rs(), Rt: word.Rt()}

	switch desc.Format {
	case FORMAT_R:
		inst.Rd = word.Rd()
		inst.Shamt = word.Shamt()
		if inst.Shamt != 0 || word.Funct() != desc.Funct {
			err = ErrInstructionMalformed
			return
		}
		if desc.Syscall && (inst.Rs|inst.Rt|inst.Rd) != 0 {
			err = ErrInstructionMalformed
			return
		}
	case FORMAT_I:
		inst.Imm = word.Imm()
	}

	return
}
