package isa

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrMnemonicUnknown      = errors.New(f("mnemonic unknown"))
	ErrOpcodeUnknown        = errors.New(f("opcode unknown"))
	ErrRegisterUnknown      = errors.New(f("register unknown"))
	ErrInstructionMalformed = errors.New(f("instruction malformed"))

	// Table construction errors
	ErrMnemonicDuplicate = errors.New(f("mnemonic duplicated"))
	ErrOpcodeDuplicate   = errors.New(f("opcode duplicated"))
	ErrOpcodeRange       = errors.New(f("opcode out of range"))
)

// ErrMnemonic is an unknown mnemonic.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("mnemonic '%v' unknown", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrMnemonicUnknown
}

// ErrOpcode is an opcode with no descriptor.
type ErrOpcode uint8

func (err ErrOpcode) Error() string {
	return f("opcode 0x%02x unknown", uint8(err))
}

func (err ErrOpcode) Is(target error) bool {
	return target == ErrOpcodeUnknown
}

// ErrRegister is an unrecognized register name.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterUnknown
}
