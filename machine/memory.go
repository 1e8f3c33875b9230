package machine

import (
	"encoding/binary"
)

// Memory is the byte addressable memory image.
type Memory [MEMORY_SIZE]byte

// check validates a word access at addr.
func (m *Memory) check(addr uint32) (err error) {
	switch {
	case addr%WORD_SIZE != 0:
		err = &ErrAddress{Address: addr, Err: ErrUnaligned}
	case uint64(addr)+WORD_SIZE > MEMORY_SIZE:
		err = &ErrAddress{Address: addr, Err: ErrOutOfBounds}
	}
	return
}

// ReadWord reads a little-endian 32-bit word.
func (m *Memory) ReadWord(addr uint32) (word uint32, err error) {
	err = m.check(addr)
	if err != nil {
		return
	}

	word = binary.LittleEndian.Uint32(m[addr : addr+WORD_SIZE])
	return
}

// WriteWord writes a little-endian 32-bit word.
func (m *Memory) WriteWord(addr uint32, word uint32) (err error) {
	err = m.check(addr)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(m[addr:addr+WORD_SIZE], word)
	return
}

// Text returns the text region.
func (m *Memory) Text() []byte {
	return m[TEXT_BASE:STATIC_BASE]
}

// Static returns the static region.
func (m *Memory) Static() []byte {
	return m[STATIC_BASE : STATIC_BASE+MAX_STATIC]
}

// Reset zeroes the memory image.
func (m *Memory) Reset() {
	clear(m[:])
}
