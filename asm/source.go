package asm

import (
	"bufio"
	"io"
	"strings"
)

// UndefinedSection is the section lines belong to before the first
// section directive.
const UndefinedSection = "UND"

// Context carries the parsed statements of one source line together
// with the section the line belongs to.
type Context struct {
	Section string
	Data    []Parsed
	LineNum int
	Line    string
}

// sourceIterator advances through a line source, running the parser
// cascade over every line and tracking the current section.
type sourceIterator struct {
	scanner *bufio.Scanner
	section string
	lineNum int
}

func newSourceIterator(r io.Reader) *sourceIterator {
	return &sourceIterator{
		scanner: bufio.NewScanner(r),
		section: UndefinedSection,
	}
}

// Next parses lines until one yields at least one statement, skipping
// empty parses. It returns nil after the last line.
func (it *sourceIterator) Next() (*Context, error) {
	for it.scanner.Scan() {
		it.lineNum++
		ctx := &Context{
			Section: it.section,
			LineNum: it.lineNum,
			Line:    it.scanner.Text(),
		}

		line := ctx.Line
		for n := range parsers {
			data := parsers[n].parse(line)
			if data.Flags&SUCCESS == 0 {
				continue
			}
			// take out consumed data, leave only the suffix
			line = data.Values[len(data.Values)-1]
			data.Values = data.Values[:len(data.Values)-1]
			ctx.Data = append(ctx.Data, data)

			if data.Flags&SECTION != 0 {
				it.section = data.Values[0]
				ctx.Section = it.section
			}
			if data.Flags&LABEL == 0 {
				break
			}
		}

		// nonwhitespace characters no parser picked up are an error
		if strings.TrimSpace(line) != "" {
			return nil, &ErrSyntax{LineNo: ctx.LineNum, Line: ctx.Line, Err: ErrLeftover(line)}
		}
		if len(ctx.Data) == 0 {
			continue
		}
		return ctx, nil
	}
	return nil, it.scanner.Err()
}
