// Package isa describes the instruction set: the R and I word layouts, the
// registry of instruction descriptors, and the register names.
//
// R-type words are laid out as opcode(6) rs(5) rt(5) rd(5) shamt(5) funct(6),
// I-type words as opcode(6) rs(5) rt(5) immediate(16), most significant bits
// first. The opcode field alone selects the descriptor; the service call
// occupies the reserved opcode 0.
package isa
