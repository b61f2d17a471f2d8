package asm

import (
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
)

// secondPass re-walks the parsed records, emitting encoded bytes into
// the section buffers and resolving or deferring symbol references.
func (a *Assembler) secondPass() error {
	for _, ctx := range a.lines {
		for n := range ctx.Data {
			if err := a.secondPassStmt(ctx, &ctx.Data[n]); err != nil {
				return &ErrSyntax{LineNo: ctx.LineNum, Line: ctx.Line, Err: err}
			}
		}
		if a.Verbose {
			pp.Fprintf(os.Stderr, "pass2 %v:\t%v\t%v\n", ctx.Section, ctx.Data, a.section(ctx.Section).Counter)
		}
	}
	return nil
}

func (a *Assembler) secondPassStmt(ctx *Context, datum *Parsed) error {
	sec := a.section(ctx.Section)
	switch {
	case datum.Flags&ALLOC != 0:
		stream := sec.Dwords()
		if strings.EqualFold(datum.Values[0], "byte") {
			stream = sec.Words()
		}
		for _, token := range datum.Values[1:] {
			value, err := sctoi(token)
			if err != nil {
				return err
			}
			if err = stream.Put(value); err != nil {
				return err
			}
		}

	case datum.Flags&RELOC != 0:
		for name := range strings.SplitSeq(datum.Values[1], ",") {
			if entry, ok := a.Symbols.Get(name); ok {
				entry.Value.IsLocal = false
			}
		}

	case datum.Flags&SKIP != 0:
		count, fill, err := a.countAndFill(datum)
		if err != nil {
			return err
		}
		for range count {
			if err = sec.Bytes().Put(fill); err != nil {
				return err
			}
		}

	case datum.Flags&ALIGN != 0:
		num, fill, err := a.countAndFill(datum)
		if err != nil {
			return err
		}
		pad := sec.Counter % uint(num)
		for range pad {
			if err = sec.Bytes().Put(fill); err != nil {
				return err
			}
		}

	case datum.Flags&INSTRUCTION != 0:
		return a.emitInstruction(ctx, datum, sec)
	}
	return nil
}

// countAndFill reads the argument and the optional fill value of a
// .skip or .align record.
func (a *Assembler) countAndFill(datum *Parsed) (count, fill int, err error) {
	count, err = strconv.Atoi(datum.Values[0])
	if err != nil {
		return 0, 0, ErrBadNumber(datum.Values[0])
	}
	if len(datum.Values) > 1 {
		fill, err = strconv.Atoi(datum.Values[1])
		if err != nil {
			return 0, 0, ErrBadNumber(datum.Values[1])
		}
	}
	return count, fill, nil
}

// emitInstruction writes the instruction descriptor, then for every
// enabled operand its descriptor byte and payload.
func (a *Assembler) emitInstruction(ctx *Context, datum *Parsed, sec *Section) error {
	entry, ok := optable.Get(datum.Values[0])
	if !ok {
		return ErrUnknownInstruction(datum.Values[0])
	}
	opSz := opSize(entry.Value, datum.Flags)

	desc := entry.Index << 3
	if opSz == DWORD_SZ {
		desc |= 0x4
	}
	if err := sec.Bytes().Put(desc); err != nil {
		return err
	}

	idx := 1
	if datum.Flags&EXTENDED != 0 {
		idx++ // the w suffix token
	}

	for i := 1; i <= OP_NUM && IsEnabled(datum.Flags, i); i++ {
		opDesc := AddrMask(datum.Flags, i)
		mode := AddrOf(datum.Flags, i)

		effSz := opSz
		switch {
		case mode == MODE_REGIND8:
			effSz = WORD_SZ
		case mode == MODE_REGIND16:
			effSz = DWORD_SZ
		case datum.Flags&(SymRel(i)|SymAdr(i)) != 0:
			effSz = DWORD_SZ
		}

		// locate the register and value tokens of this operand
		regIdx, valIdx := -1, -1
		switch mode {
		case MODE_REGDIR, MODE_REGIND, MODE_REGIND8, MODE_REGIND16:
			regIdx = idx
			idx++
			if IsReduced(datum.Flags, i) {
				idx++
			}
			if mode == MODE_REGIND8 || mode == MODE_REGIND16 {
				valIdx = idx
				idx++
			}
		default:
			valIdx = idx
			idx++
		}

		if rt, isSym := SymKind(datum.Flags, i); isSym {
			if err := a.resolveSymbol(ctx, datum, valIdx, rt, effSz, sec); err != nil {
				return err
			}
			datum.Flags = ClearSym(datum.Flags, i)
		}

		if regIdx >= 0 {
			reg, err := GetReg(datum.Values[regIdx])
			if err != nil {
				return err
			}
			opDesc |= uint8(reg << 1)
			if IsReduced(datum.Flags, i) && strings.EqualFold(datum.Values[regIdx+1], "h") {
				opDesc |= 0x1
			}
		}

		if err := sec.Bytes().Put(int(opDesc)); err != nil {
			return err
		}

		switch mode {
		case MODE_REGDIR, MODE_REGIND:
			// register only, no payload

		case MODE_IMMED:
			value, err := sctoi(datum.Values[valIdx])
			if err != nil {
				return err
			}
			if bitsize(uint(value)) > 8*effSz {
				return &ErrStreamOverflow{Number: value, Bits: 8 * effSz}
			}
			stream, err := sec.GetStream(effSz)
			if err != nil {
				return err
			}
			if err = stream.Put(value); err != nil {
				return err
			}

		case MODE_REGIND8, MODE_REGIND16:
			value, err := sctoi(datum.Values[valIdx])
			if err != nil {
				return err
			}
			stream, err := sec.GetStream(effSz)
			if err != nil {
				return err
			}
			if err = stream.Put(value); err != nil {
				return err
			}

		case MODE_MEM:
			value, err := sctoi(datum.Values[valIdx])
			if err != nil {
				return err
			}
			if err = sec.Dwords().Put(value); err != nil {
				return err
			}

		default:
			return ErrInternal
		}
	}
	return nil
}

// resolveSymbol substitutes the symbol token at valIdx with a concrete
// value, or defers the reference through the relocation table.
func (a *Assembler) resolveSymbol(ctx *Context, datum *Parsed, valIdx int, rt RelocType, effSz int, sec *Section) error {
	name := datum.Values[valIdx]

	if entry, ok := a.Constants.Get(name); ok {
		if rt == R_386_PC16 {
			return ErrRelativeConstant
		}
		datum.Values[valIdx] = strconv.Itoa(entry.Value.Value)
		return nil
	}

	if a.symbolDefined(name) {
		entry, _ := a.Symbols.Get(name)
		sym := entry.Value
		if rt == R_386_PC16 {
			value := (int(sym.Offset) - int(sec.Counter)) & 0xFFFF
			datum.Values[valIdx] = strconv.Itoa(value)
			return nil
		}
		// absolute references read the bytes already emitted at the
		// symbol's offset
		if value, ok := readThrough(a.section(sym.Section).Memdump(), sym.Offset, effSz); ok {
			datum.Values[valIdx] = strconv.Itoa(value)
			return nil
		}
		// target bytes not written yet, defer to the relocation table
	}

	if !a.Symbols.Has(name) {
		a.Symbols.Put(name, Symbol{
			Section: RelocSentinel,
			Offset:  ExternOffset,
			IsLocal: false,
		})
	}
	entry, _ := a.Symbols.Get(name)
	a.Relocations = append(a.Relocations, Relocation{
		Section: ctx.Section,
		Offset:  sec.Counter + 1, // the descriptor byte precedes the payload
		Num:     entry.Index,
		Type:    rt,
	})
	datum.Values[valIdx] = strconv.Itoa(1<<(effSz*8) - 1)
	return nil
}

// readThrough reads count little-endian bytes out of a memdump at the
// given byte offset. ok is false when the bytes are not yet written.
func readThrough(memdump string, offset uint, count int) (value int, ok bool) {
	start := 2 * int(offset)
	end := start + 2*count
	if end > len(memdump) {
		return 0, false
	}
	for n := count - 1; n >= 0; n-- {
		b, err := strconv.ParseUint(memdump[start+2*n:start+2*n+2], 16, 8)
		if err != nil {
			return 0, false
		}
		value = value<<8 | int(b)
	}
	return value, true
}
