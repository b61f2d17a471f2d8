// Package asm implements a two-pass assembler for a 16-bit,
// two-address von Neumann CPU.
//
// Source lines run through a declarative regex cascade that produces
// flag-tagged records. The first pass walks the records to compute
// section offsets, intern labels and constants and narrow
// register-indirect displacements; the second pass encodes the
// instructions into little-endian section buffers, deferring
// unresolved references through a relocation table. The result is a
// textual object listing of the relocations, section memdumps, the
// symbol table and the constant table.
package asm
