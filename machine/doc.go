// Package machine holds the mutable state of the simulated processor.
//
// A Machine is a 32 entry register file, a 64KiB byte addressable memory
// image, a program counter and the length of the program loaded into the
// text region. The text region starts at address 0 and is MAX_PROGRAM_SIZE
// bytes long; the static region follows it.
package machine
