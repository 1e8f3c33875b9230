package machine

import (
	"errors"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrProgramFull  = errors.New(f("program exceeds %d bytes of text", MAX_PROGRAM_SIZE))
	ErrUnaligned    = errors.New(f("unaligned word access"))
	ErrOutOfBounds  = errors.New(f("address out of bounds"))
	ErrTextBoundary = errors.New(f("write crosses text region"))
)

// ErrAddress reports the address of a failed memory access.
type ErrAddress struct {
	Address uint32
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address 0x%04x %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
