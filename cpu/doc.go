// Package cpu implements the execution engine of the simulator.
//
// The CPU fetches little-endian words from the text region of a Machine,
// decodes them through the instruction table and applies them to the
// register file, until the program counter passes the end of the program
// (halted) or an instruction cannot be executed (faulted). The reserved
// service call dispatches on $v0 through a table of services.
package cpu
