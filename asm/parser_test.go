package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getParser(t *testing.T, kind Flags) *parser {
	t.Helper()
	for n := range parsers {
		if parsers[n].flags&kind != 0 {
			return &parsers[n]
		}
	}
	t.Fatalf("parser not defined for %#x", kind)
	return nil
}

func TestParserLabel(t *testing.T) {
	assert := assert.New(t)

	data := getParser(t, LABEL).parse("\t label1: \n")
	assert.NotZero(data.Flags & SUCCESS)
	assert.Equal("label1", data.Values[0])
}

func TestParserSection(t *testing.T) {
	assert := assert.New(t)

	data := getParser(t, SECTION).parse("\t.section \".text\" \n")
	assert.NotZero(data.Flags & SUCCESS)
	assert.Equal("text", data.Values[0])

	data = getParser(t, SECTION).parse(".data")
	assert.NotZero(data.Flags & SUCCESS)
	assert.Equal("data", data.Values[0])
}

func TestParserLabelWithInstruction(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	iter := newSourceIterator(strings.NewReader("label1: mov ax, bp"))
	ctx, err := iter.Next()
	require.NoError(err)
	require.NotNil(ctx)
	require.Len(ctx.Data, 2)

	assert.NotZero(ctx.Data[0].Flags & LABEL)
	assert.Equal("label1", ctx.Data[0].Values[0])

	assert.NotZero(ctx.Data[1].Flags & INSTRUCTION)
	assert.Equal([]string{"mov", "ax", "bp"}, ctx.Data[1].Values)
	assert.Equal(MODE_REGDIR, AddrOf(ctx.Data[1].Flags, 1))
	assert.Equal(MODE_REGDIR, AddrOf(ctx.Data[1].Flags, 2))

	ctx, err = iter.Next()
	require.NoError(err)
	assert.Nil(ctx)
}

func TestParserAllocRecursion(t *testing.T) {
	assert := assert.New(t)

	data := getParser(t, ALLOC).parse(".byte 1,2 ,3,4,  5, 6")
	assert.NotZero(data.Flags & SUCCESS)
	// the trailing element is the unparsed suffix
	assert.Equal([]string{"byte", "1", "2", "3", "4", "5", "6"},
		data.Values[:len(data.Values)-1])
}

func TestParserNumChar(t *testing.T) {
	assert := assert.New(t)

	data := getParser(t, ALLOC).parse(`.byte 'W', 'O', 'R', 'D', '\n'`)
	assert.NotZero(data.Flags & SUCCESS)
	assert.Equal("W", data.Values[1])
	assert.Equal(`\n`, data.Values[5])
}

func TestParserAddressingModes(t *testing.T) {
	assert := assert.New(t)

	instruction := getParser(t, INSTRUCTION)

	data := instruction.parse("mov [r7][test]")
	assert.Equal(MODE_REGIND16, AddrOf(data.Flags, 1))
	assert.NotZero(data.Flags & SymAbs(1))
	assert.Equal("7", data.Values[1])
	assert.Equal("test", data.Values[2])

	data = instruction.parse("jne $printf")
	assert.Equal(MODE_IMMED, AddrOf(data.Flags, 1))
	assert.NotZero(data.Flags & SymRel(1))
	assert.Equal("printf", data.Values[1])

	data = instruction.parse("movw ax, 3560")
	assert.NotZero(data.Flags & EXTENDED)
	assert.Equal(MODE_REGDIR, AddrOf(data.Flags, 1))
	assert.Equal(MODE_IMMED, AddrOf(data.Flags, 2))
	assert.Zero(data.Flags & (SymAbs(2) | SymRel(2) | SymAdr(2)))

	data = instruction.parse("push *1233")
	assert.Equal(MODE_MEM, AddrOf(data.Flags, 1))
	assert.Equal("1233", data.Values[1])

	data = instruction.parse("mov axh, 3")
	assert.NotZero(data.Flags & Reduced(1))
	assert.Equal([]string{"mov", "ax", "h", "3"}, data.Values[:len(data.Values)-1])

	data = instruction.parse("call &obrada")
	assert.NotZero(data.Flags & SymAdr(1))
}

func TestParserCaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	lower := getParser(t, INSTRUCTION).parse("mov ax, bp")
	upper := getParser(t, INSTRUCTION).parse("MOV AX, BP")
	assert.Equal(lower.Flags, upper.Flags)

	entry, ok := optable.Get("MOV")
	assert.True(ok)
	lowerEntry, _ := optable.Get("mov")
	assert.Equal(lowerEntry.Index, entry.Index)
}

func TestParserIdempotence(t *testing.T) {
	assert := assert.New(t)

	instruction := getParser(t, INSTRUCTION)

	for _, line := range []string{
		"mov ax, bp",
		"add bx, 42",
		"cmp sp, pc",
	} {
		first := instruction.parse(line)
		assert.NotZero(first.Flags & SUCCESS)

		// re-emit the captured tokens as a canonical line
		tokens := first.Values[:len(first.Values)-1]
		canonical := tokens[0] + " " + strings.Join(tokens[1:], ", ")
		second := instruction.parse(canonical)
		assert.Equal(first.Flags, second.Flags, "line %q", line)
	}
}

func TestParserLeftover(t *testing.T) {
	require := require.New(t)

	iter := newSourceIterator(strings.NewReader("mov ax, bp garbage"))
	_, err := iter.Next()
	require.Error(err)
	require.ErrorContains(err, "leftover")
}

func TestSourceIteratorSectionTracking(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	source := ".text\nmov ax, bp\n.data\n.byte 1\n"
	iter := newSourceIterator(strings.NewReader(source))

	ctx, err := iter.Next()
	require.NoError(err)
	assert.Equal("text", ctx.Section)

	ctx, err = iter.Next()
	require.NoError(err)
	assert.Equal("text", ctx.Section)

	ctx, err = iter.Next()
	require.NoError(err)
	assert.Equal("data", ctx.Section)

	ctx, err = iter.Next()
	require.NoError(err)
	assert.Equal("data", ctx.Section)
}
