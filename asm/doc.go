// Package asm is a single pass assembler from source lines to instruction
// words in a machine's text region.
//
// Each line holds at most one instruction: a mnemonic followed by operands
// separated by whitespace or commas. '#' starts a comment. The .text and
// .data directives select the active segment; lines in .data are not
// encoded. Immediates are base-10 signed 16-bit integers, or a compile-time
// $(...) expression over the predefined constants.
//
// An error on one line never stops the pass: every line is checked, and
// each failing line yields one Diagnostic.
package asm
