package asm

import (
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
)

// firstPass computes section offsets, interns labels, sections and
// constants, and narrows register-indirect displacements that fit in
// a single byte.
func (a *Assembler) firstPass() error {
	for _, ctx := range a.lines {
		for n := range ctx.Data {
			if err := a.firstPassStmt(ctx, &ctx.Data[n]); err != nil {
				return &ErrSyntax{LineNo: ctx.LineNum, Line: ctx.Line, Err: err}
			}
		}
		if a.Verbose {
			pp.Fprintf(os.Stderr, "pass1 %v:\t%v\t%v\n", ctx.Section, ctx.Data, a.section(ctx.Section).Counter)
		}
	}
	return nil
}

func (a *Assembler) firstPassStmt(ctx *Context, datum *Parsed) error {
	switch {
	case datum.Flags&SECTION != 0:
		name := datum.Values[0]
		a.section(name)
		if a.declared(name) {
			return ErrSymbolRedeclared(name)
		}
		a.Symbols.Put(name, Symbol{
			Section: name,
			Offset:  a.section(ctx.Section).Counter,
			IsLocal: true,
		})

	case datum.Flags&LABEL != 0:
		name := datum.Values[0]
		if a.declared(name) {
			return ErrSymbolRedeclared(name)
		}
		a.Symbols.Put(name, Symbol{
			Section: ctx.Section,
			Offset:  a.section(ctx.Section).Counter,
			IsLocal: true,
		})

	case datum.Flags&INSTRUCTION != 0:
		bytes, err := a.instructionSize(datum)
		if err != nil {
			return err
		}
		a.section(ctx.Section).Counter += uint(bytes)

	case datum.Flags&ALLOC != 0:
		width := DWORD_SZ
		if strings.EqualFold(datum.Values[0], "byte") {
			width = WORD_SZ
		}
		a.section(ctx.Section).Counter += uint((len(datum.Values) - 1) * width)

	case datum.Flags&ALIGN != 0:
		num, err := strconv.Atoi(datum.Values[0])
		if err != nil {
			return ErrBadNumber(datum.Values[0])
		}
		if num == 0 || num&(num-1) != 0 {
			return ErrBadAlignment(num)
		}
		sec := a.section(ctx.Section)
		sec.Counter += sec.Counter % uint(num)

	case datum.Flags&SKIP != 0:
		count, err := strconv.Atoi(datum.Values[0])
		if err != nil {
			return ErrBadNumber(datum.Values[0])
		}
		a.section(ctx.Section).Counter += uint(count)

	case datum.Flags&EQU != 0:
		name := datum.Values[0]
		if a.declared(name) {
			return ErrSymbolRedeclared(name)
		}
		value, err := sctoi(datum.Values[1])
		if err != nil {
			return err
		}
		a.Constants.Put(name, Constant{Value: value})
	}
	return nil
}

// instructionSize computes the encoded size of one instruction and
// finalizes narrowable addressing modes on the parsed record.
func (a *Assembler) instructionSize(datum *Parsed) (bytes int, err error) {
	mnemonic := datum.Values[0]
	entry, ok := optable.Get(mnemonic)
	if !ok {
		return 0, ErrUnknownInstruction(mnemonic)
	}
	if datum.Flags&EXTENDED != 0 && entry.Value.Flags&FLAG_E == 0 {
		return 0, ErrFixedSize(mnemonic)
	}
	opSz := opSize(entry.Value, datum.Flags)

	bytes = INSTR_SZ
	idx := 1
	if datum.Flags&EXTENDED != 0 {
		idx++ // the w suffix token
	}

	for i := 1; i <= OP_NUM && IsEnabled(datum.Flags, i); i++ {
		bytes++ // operand descriptor byte

		if IsReduced(datum.Flags, i) {
			if datum.Flags&EXTENDED != 0 {
				return 0, ErrExtendedReduced
			}
		}

		switch AddrOf(datum.Flags, i) {
		case MODE_REGDIR, MODE_REGIND:
			idx++ // register token
			if IsReduced(datum.Flags, i) {
				idx++ // l/h suffix token
			}

		case MODE_REGIND16, MODE_REGIND8:
			idx++ // register token
			if IsReduced(datum.Flags, i) {
				idx++
			}
			narrow := false
			if _, isSym := SymKind(datum.Flags, i); isSym {
				if c, ok := a.Constants.Get(datum.Values[idx]); ok &&
					bitsize(uint(c.Value.Value)) <= WORD_SZ*8 {
					narrow = true
				}
			} else {
				value, verr := sctoi(datum.Values[idx])
				if verr != nil {
					return 0, verr
				}
				narrow = bitsize(uint(value)) <= WORD_SZ*8
			}
			idx++
			if narrow {
				datum.Flags = SetMode(datum.Flags, i, Regind8(i))
				bytes += WORD_SZ
			} else {
				bytes += DWORD_SZ
			}

		case MODE_IMMED:
			if datum.Flags&(SymRel(i)|SymAdr(i)) != 0 {
				bytes += DWORD_SZ
			} else {
				bytes += opSz
			}
			idx++

		case MODE_MEM:
			bytes += DWORD_SZ
			idx++

		default:
			return 0, ErrInternal
		}
	}
	return bytes, nil
}
