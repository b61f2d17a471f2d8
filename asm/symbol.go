package asm

// RelocSentinel is the section name carried by symbol entries that
// only record an external reference, not a definition in this unit.
const RelocSentinel = "RELOC"

// ExternOffset is the offset sentinel carried by external symbols.
const ExternOffset = 0xFFFF

// Symbol is one row of the symbol table. Offset is the byte offset
// inside Section at which the symbol is bound.
type Symbol struct {
	Section string
	Offset  uint
	IsLocal bool
}

// Constant is one row of the constant table, produced by .equ.
type Constant struct {
	Value int
}

// RelocType is the kind of a relocation record.
type RelocType uint8

//go:generate go tool stringer -linecomment -type=RelocType
const (
	R_386_16   = RelocType(0) // R_386_16
	R_386_PC16 = RelocType(1) // R_386_PC16
)

// Relocation defers a symbol reference to link time. Offset points at
// the operand payload inside Section; Num is the insertion index of
// the referenced symbol in the symbol table.
type Relocation struct {
	Section string
	Offset  uint
	Num     int
	Type    RelocType
}
