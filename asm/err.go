package asm

import (
	"errors"

	"github.com/aleksailic/ASM/translate"
)

var f = translate.From

var (
	ErrRelativeConstant = errors.New(f("cannot use relative relocation on absolute data"))
	ErrExtendedReduced  = errors.New(f("half-register with extended operand size"))
	ErrInternal         = errors.New(f("unreachable addressing mode"))
)

// ErrSyntax wraps an error with the source line it was raised on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrLeftover string

func (err ErrLeftover) Error() string {
	return f("leftover '%v' was not processed", string(err))
}

type ErrSymbolRedeclared string

func (err ErrSymbolRedeclared) Error() string {
	return f("symbol %v redeclared", string(err))
}

type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("instruction %v doesn't exist", string(err))
}

type ErrFixedSize string

func (err ErrFixedSize) Error() string {
	return f("instruction %v has a fixed operand size", string(err))
}

type ErrBadAlignment int

func (err ErrBadAlignment) Error() string {
	return f("align argument %v is not a power of two", int(err))
}

type ErrBadRegister string

func (err ErrBadRegister) Error() string {
	return f("invalid register %v", string(err))
}

type ErrBadNumber string

func (err ErrBadNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrStreamOverflow reports a value wider than the stream it was
// written to.
type ErrStreamOverflow struct {
	Number int
	Bits   int
}

func (err *ErrStreamOverflow) Error() string {
	return f("number %v is larger than the %v-bit stream", err.Number, err.Bits)
}

type ErrStreamWidth int

func (err ErrStreamWidth) Error() string {
	return f("illegal stream width %v", int(err))
}
