package cpu

import (
	"errors"

	"github.com/ezrec/mipsim/isa"
	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrRuntimeFault   = errors.New(f("runtime fault"))
	ErrServiceUnknown = errors.New(f("service unknown"))
	ErrNotRunning     = errors.New(f("cpu not running"))
	ErrConsoleMissing = errors.New(f("no console attached"))
)

// ErrService is a service number with no service.
type ErrService uint32

func (err ErrService) Error() string {
	return f("service %d unknown", uint32(err))
}

func (err ErrService) Is(target error) bool {
	return target == ErrServiceUnknown
}

// Fault reports the instruction that stopped a run.
type Fault struct {
	Pc   uint32   // Program counter of the instruction.
	Word isa.Word // Raw instruction word.
	Err  error    // Cause.
}

func (err *Fault) Error() string {
	return f("fault at pc 0x%04x word 0x%08x: %v", err.Pc, uint32(err.Word), err.Err)
}

func (err *Fault) Unwrap() error {
	return err.Err
}

func (err *Fault) Is(target error) bool {
	return target == ErrRuntimeFault
}
