// Package internal holds helpers for publishing assembler equates.
package internal

import (
	"iter"
	"maps"
	"slices"
	"strconv"
)

// Concat2 yields the pairs of each sequence in turn.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// Defines yields integer constants as decimal equates, sorted by name.
func Defines(consts map[string]int) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Sorted(maps.Keys(consts)) {
			if !yield(name, strconv.Itoa(consts[name])) {
				return
			}
		}
	}
}
