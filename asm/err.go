package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	ErrDirectiveUnknown = errors.New(f("directive unknown"))
	ErrDirectiveSyntax  = errors.New(f("directive takes no arguments"))
	ErrArityMismatch    = errors.New(f("operand count mismatch"))
	ErrImmediateInvalid = errors.New(f("immediate invalid"))
	ErrSeparator        = errors.New(f("misplaced separator"))
)

// Kind classifies a Diagnostic.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_SYNTAX   = Kind(0) // syntax error
	KIND_ARITY    = Kind(1) // arity error
	KIND_OPERAND  = Kind(2) // operand error
	KIND_CAPACITY = Kind(3) // capacity error
)

// Diagnostic is an assembly error on one source line.
type Diagnostic struct {
	LineNo int    // 1-based line number.
	Line   string // Source text of the line.
	Kind   Kind   // Error class.
	Err    error  // Underlying error.
}

func (err Diagnostic) Error() string {
	return f("line %d '%v' %v: %v", err.LineNo, err.Line, err.Kind, err.Err)
}

func (err Diagnostic) Unwrap() error {
	return err.Err
}

// ErrDirective is an unrecognized directive.
type ErrDirective string

func (err ErrDirective) Error() string {
	return f("directive '%v' unknown", string(err))
}

func (err ErrDirective) Is(target error) bool {
	return target == ErrDirectiveUnknown
}

// ErrArity is an operand count that does not match the instruction.
type ErrArity struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrArity) Error() string {
	return f("%v takes %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

func (err ErrArity) Is(target error) bool {
	return target == ErrArityMismatch
}

// ErrParseNumber is an immediate that is not a base-10 integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrImmediateInvalid
}

// ErrImmediateRange is an immediate that does not fit in 16 signed bits.
type ErrImmediateRange string

func (err ErrImmediateRange) Error() string {
	return f("'%v' does not fit in 16 bits", string(err))
}

func (err ErrImmediateRange) Is(target error) bool {
	return target == ErrImmediateInvalid
}

// ErrParseExpression is a $(...) expression that did not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrImmediateInvalid
}

// ErrOperands collects every operand error of a line.
type ErrOperands []error

func (err ErrOperands) Error() string {
	msgs := make([]string, len(err))
	for n, e := range err {
		msgs[n] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (err ErrOperands) Unwrap() []error {
	return err
}

// ErrOperandEmpty is a comma with nothing before or after it. The value is
// the index of the empty field.
type ErrOperandEmpty int

func (err ErrOperandEmpty) Error() string {
	return f("empty field %d between separators", int(err))
}

func (err ErrOperandEmpty) Is(target error) bool {
	return target == ErrSeparator
}
