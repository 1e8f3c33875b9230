package io

import (
	"io"
	"strconv"
)

// Tape writes printed values to an io.Writer, in decimal with no separator.
type Tape struct {
	Output io.Writer
}

var _ Console = (*Tape)(nil)

// PrintInt writes the decimal value.
func (tc *Tape) PrintInt(value int32) (err error) {
	if tc.Output == nil {
		err = ErrConsoleClosed
		return
	}
	_, err = io.WriteString(tc.Output, strconv.FormatInt(int64(value), 10))
	return
}
