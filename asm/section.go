package asm

import (
	"fmt"
	"strings"
)

// Section is an append-only little-endian byte buffer with a running
// location counter. The counter is advanced by every stream write and
// reset between the two passes.
type Section struct {
	Counter uint

	data []byte
}

// NewSection creates an empty section.
func NewSection() *Section {
	return &Section{}
}

// Stream writes integers of a fixed bit width into its section.
type Stream struct {
	section *Section
	bits    int
}

// Bytes is the raw single-byte write view.
func (s *Section) Bytes() Stream { return Stream{s, 8} }

// Words writes WORD_SZ bytes per value.
func (s *Section) Words() Stream { return Stream{s, WORD_SZ * 8} }

// Dwords writes DWORD_SZ bytes per value.
func (s *Section) Dwords() Stream { return Stream{s, DWORD_SZ * 8} }

// GetStream selects the words or dwords view by byte count.
func (s *Section) GetStream(count int) (Stream, error) {
	switch count {
	case WORD_SZ:
		return s.Words(), nil
	case DWORD_SZ:
		return s.Dwords(), nil
	}
	return Stream{}, ErrStreamWidth(count)
}

// Put appends number in little-endian byte order, advancing the
// section counter by the stream width.
func (st Stream) Put(number int) error {
	if bitsize(uint(number)) > st.bits {
		return &ErrStreamOverflow{Number: number, Bits: st.bits}
	}
	for i := 0; i < st.bits; i += 8 {
		st.section.Counter++
		st.section.data = append(st.section.data, byte(number>>i))
	}
	return nil
}

// Len returns the number of bytes written so far.
func (s *Section) Len() int {
	return len(s.data)
}

// Memdump renders the section data as uppercase hex, two characters
// per byte, no separators.
func (s *Section) Memdump() string {
	var sb strings.Builder
	for _, b := range s.data {
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
