// Package io provides the output consoles that service calls print to.
package io

// Console receives the values printed by service calls.
type Console interface {
	// PrintInt prints a signed integer.
	PrintInt(value int32) error
}
