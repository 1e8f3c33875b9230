package cpu

import (
	"log"
	"maps"

	"github.com/ezrec/mipsim/isa"
)

// Service numbers, selected by $v0.
const (
	SYSCALL_PRINT_INT = 1 // Print $a0 as a signed integer.
)

var _cpu_defines = map[string]int{
	"SYSCALL_PRINT_INT": SYSCALL_PRINT_INT,
}

// Service is the host behaviour of one service number.
type Service func(cpu *Cpu) error

// Services maps service numbers to services.
type Services map[uint32]Service

// DefaultServices returns a fresh copy of the standard services.
func DefaultServices() Services {
	return Services{
		SYSCALL_PRINT_INT: PrintInt,
	}
}

// Clone returns a copy that can be extended without affecting the original.
func (svc Services) Clone() Services {
	return maps.Clone(svc)
}

// PrintInt prints $a0 to the console.
func PrintInt(cpu *Cpu) (err error) {
	if cpu.Console == nil {
		err = ErrConsoleMissing
		return
	}

	value := int32(cpu.Machine.Registers.Get(isa.REG_A0))
	return cpu.Console.PrintInt(value)
}

// Syscall dispatches the service selected by $v0.
func (cpu *Cpu) Syscall() (err error) {
	selector := cpu.Machine.Registers.Get(isa.REG_V0)

	service, ok := cpu.Services[selector]
	if !ok {
		err = ErrService(selector)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: syscall %d", selector)
	}

	return service(cpu)
}
