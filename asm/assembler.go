// Copyright 2026, Aleksa Ilić

package asm

import (
	"io"

	"github.com/aleksailic/ASM/internal"
)

// Assembler translates one source unit into an in-memory object
// listing: encoded section data plus the symbol, constant and
// relocation tables. It is not safe for concurrent use.
type Assembler struct {
	Verbose bool // dump each parsed line to stderr during the passes

	Symbols     *internal.HashVec[Symbol]
	Constants   *internal.HashVec[Constant]
	Sections    *internal.HashVec[*Section]
	Relocations []Relocation

	// parsed records shared by both passes, so addressing modes
	// narrowed during the first pass are seen by the second
	lines []*Context
}

// New creates an empty Assembler.
func New() *Assembler {
	a := &Assembler{}
	a.reset()
	return a
}

func (a *Assembler) reset() {
	a.Symbols = internal.NewHashVec[Symbol]()
	a.Constants = internal.NewHashVec[Constant]()
	a.Sections = internal.NewHashVec[*Section]()
	a.Relocations = nil
	a.lines = nil
}

// Assemble reads the whole source and runs both passes. Any previous
// state is discarded.
func (a *Assembler) Assemble(input io.Reader) (err error) {
	a.reset()

	if err = a.read(input); err != nil {
		return
	}
	if err = a.firstPass(); err != nil {
		return
	}

	// restart section counters for the emitting pass
	for entry := range a.Sections.All() {
		entry.Value.Counter = 0
	}

	return a.secondPass()
}

// read parses the source up to .end or EOF.
func (a *Assembler) read(input io.Reader) error {
	iter := newSourceIterator(input)
	for {
		ctx, err := iter.Next()
		if err != nil {
			return err
		}
		if ctx == nil {
			return nil
		}
		a.lines = append(a.lines, ctx)
		for _, datum := range ctx.Data {
			if datum.Flags&END != 0 {
				return nil
			}
		}
	}
}

// section returns the named section, creating its entry on first
// reference.
func (a *Assembler) section(name string) *Section {
	if entry, ok := a.Sections.Get(name); ok {
		return entry.Value
	}
	return a.Sections.Put(name, NewSection()).Value
}

// symbolDefined reports whether name is defined in this unit. Entries
// carrying the RELOC sentinel only mark external references.
func (a *Assembler) symbolDefined(name string) bool {
	entry, ok := a.Symbols.Get(name)
	return ok && entry.Value.Section != RelocSentinel
}

// declared reports whether name is taken in either the symbol or the
// constant namespace.
func (a *Assembler) declared(name string) bool {
	for key := range internal.IterSeqConcat(a.Symbols.Keys(), a.Constants.Keys()) {
		if key == name {
			return true
		}
	}
	return false
}
