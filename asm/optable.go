package asm

import (
	"strconv"
	"strings"

	"github.com/aleksailic/ASM/internal"
)

// InstrFlags advertises the condition flags an instruction affects
// plus its behavioral traits.
type InstrFlags uint16

const (
	FLAG_Z = InstrFlags(1 << 0) // zero
	FLAG_O = InstrFlags(1 << 1) // overflow
	FLAG_C = InstrFlags(1 << 2) // carry
	FLAG_N = InstrFlags(1 << 3) // negative

	FLAG_E   = InstrFlags(1 << 4) // extensible, accepts the w suffix
	FLAG_NOP = InstrFlags(1 << 5) // takes no operands

	FLAG_TR = InstrFlags(1 << 13) // timer
	FLAG_TL = InstrFlags(1 << 14) // terminal
	FLAG_I  = InstrFlags(1 << 15) // interrupt
)

// Instruction is one optable entry. The opcode of an instruction is
// its insertion index in the optable.
type Instruction struct {
	Flags InstrFlags
}

// optable is the fixed instruction set. Mnemonic lookup is
// case-insensitive; the order defines the opcodes.
var optable = func() *internal.HashVec[Instruction] {
	table := internal.NewFoldedHashVec[Instruction]()
	for _, instr := range []struct {
		mnemonic string
		flags    InstrFlags
	}{
		{"halt", FLAG_NOP},
		{"xchg", FLAG_E},
		{"int", 0},
		{"mov", FLAG_Z | FLAG_N | FLAG_E},
		{"add", FLAG_Z | FLAG_O | FLAG_C | FLAG_N | FLAG_E},
		{"sub", FLAG_Z | FLAG_O | FLAG_C | FLAG_N | FLAG_E},
		{"mul", FLAG_Z | FLAG_N | FLAG_E},
		{"div", FLAG_Z | FLAG_N | FLAG_E},
		{"cmp", FLAG_Z | FLAG_O | FLAG_C | FLAG_N | FLAG_E},
		{"not", FLAG_Z | FLAG_N | FLAG_E},
		{"and", FLAG_Z | FLAG_N | FLAG_E},
		{"or", FLAG_Z | FLAG_N | FLAG_E},
		{"xor", FLAG_Z | FLAG_N | FLAG_E},
		{"test", FLAG_Z | FLAG_N | FLAG_E},
		{"shl", FLAG_Z | FLAG_C | FLAG_N | FLAG_E},
		{"shr", FLAG_Z | FLAG_C | FLAG_N | FLAG_E},
		{"push", FLAG_E},
		{"pop", FLAG_E},
		{"jmp", 0},
		{"jeq", 0},
		{"jne", 0},
		{"jgt", 0},
		{"call", 0},
		{"ret", FLAG_NOP},
		{"iret", FLAG_NOP},
	} {
		table.Put(instr.mnemonic, Instruction{Flags: instr.flags})
	}
	return table
}()

// mnemonics is the regex alternation of every optable mnemonic, in
// opcode order.
var mnemonics = func() string {
	var names []string
	for key := range optable.Keys() {
		names = append(names, key)
	}
	return strings.Join(names, "|")
}()

// opSize is the operand payload width of one instruction form.
func opSize(instr Instruction, flags Flags) int {
	switch {
	case instr.Flags&FLAG_NOP != 0:
		return 0
	case instr.Flags&FLAG_E == 0:
		return DWORD_SZ
	case flags&EXTENDED != 0:
		return DWORD_SZ
	}
	return WORD_SZ
}

// GetReg maps a register token to its index: the named registers, or
// a literal digit 0..7.
func GetReg(name string) (reg int, err error) {
	switch strings.ToLower(name) {
	case "ax":
		return 0, nil
	case "bx":
		return 1, nil
	case "cx":
		return 2, nil
	case "dx":
		return 3, nil
	case "bp":
		return 5, nil
	case "sp":
		return 6, nil
	case "pc":
		return 7, nil
	}
	reg, cerr := strconv.Atoi(name)
	if cerr != nil || reg < 0 || reg > REG_NUM {
		return 0, ErrBadRegister(name)
	}
	return reg, nil
}
