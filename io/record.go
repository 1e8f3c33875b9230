package io

import (
	"strconv"
	"strings"
)

// Record keeps every printed value in memory.
type Record struct {
	Values []int32
}

var _ Console = (*Record)(nil)

// PrintInt appends the value.
func (rc *Record) PrintInt(value int32) error {
	rc.Values = append(rc.Values, value)
	return nil
}

// Reset forgets all values.
func (rc *Record) Reset() {
	rc.Values = nil
}

// String returns the values as a Tape would have printed them.
func (rc *Record) String() string {
	var text strings.Builder
	for _, value := range rc.Values {
		text.WriteString(strconv.FormatInt(int64(value), 10))
	}
	return text.String()
}
