package machine

import (
	"iter"

	"github.com/ezrec/mipsim/internal"
)

const (
	MAX_PROGRAM_SIZE = 4096                         // Size of the text region, in bytes.
	MAX_STATIC       = 32768                        // Size of the static region, in bytes.
	TEXT_BASE        = 0                            // Start of the text region.
	STATIC_BASE      = TEXT_BASE + MAX_PROGRAM_SIZE // Start of the static region.
	MEMORY_SIZE      = 65536                        // Total size of the memory image.
	WORD_SIZE        = 4                            // Size of an instruction word.
)

var _machine_defines = map[string]int{
	"MAX_PROGRAM_SIZE": MAX_PROGRAM_SIZE,
	"MAX_STATIC":       MAX_STATIC,
	"TEXT_BASE":        TEXT_BASE,
	"STATIC_BASE":      STATIC_BASE,
	"MEMORY_SIZE":      MEMORY_SIZE,
	"WORD_SIZE":        WORD_SIZE,
}

// Defines returns the memory layout constants, for assembler expressions.
func Defines() iter.Seq2[string, string] {
	return internal.Defines(_machine_defines)
}
