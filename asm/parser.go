package asm

import (
	"regexp"
)

// Parsed is the result of running one parser node over a line. While
// parsing, the last element of Values is the unparsed suffix of the
// line; the source iterator pops it once the line is consumed.
type Parsed struct {
	Flags  Flags
	Values []string
}

// settings tune how a parser node combines with its surroundings.
type settings uint8

const (
	DEFAULT   = settings(0x0)
	RECURSIVE = settings(0x1) // re-run the node on its own suffix
	REQUIRED  = settings(0x2)
	OVERRIDE  = settings(0x4) // suppress the invoking node's flags
)

// parser is a declarative parse node: a flag contribution, a list of
// alternative regexes tried in order, and callback regions run against
// the suffix of a match. The first sub-parser of a region to succeed
// consumes the suffix for that region.
type parser struct {
	flags     Flags
	settings  settings
	regexes   []*regexp.Regexp
	callbacks [][]parser
}

// rxs precompiles a case-insensitive regex list.
func rxs(exprs ...string) []*regexp.Regexp {
	regexes := make([]*regexp.Regexp, len(exprs))
	for n, expr := range exprs {
		regexes[n] = regexp.MustCompile(`(?i)` + expr)
	}
	return regexes
}

// parse matches the leading portion of line. On a miss it returns no
// flags and the untouched line as the only value.
func (p *parser) parse(line string) Parsed {
	var out Parsed

	for _, re := range p.regexes {
		m := re.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		// extract data from capture groups
		for i := 1; i < len(m)/2; i++ {
			if m[2*i] < 0 {
				out.Values = append(out.Values, "")
				continue
			}
			out.Values = append(out.Values, line[m[2*i]:m[2*i+1]])
		}
		out.Flags = p.flags | SUCCESS
		// append the suffix so the next node can pick it up
		out.Values = append(out.Values, line[m[1]:])

		if p.settings&RECURSIVE != 0 {
			rec := p.parse(out.Values[len(out.Values)-1])
			if rec.Flags&SUCCESS != 0 {
				out.Values = append(out.Values[:len(out.Values)-1], rec.Values...)
			}
		}

		for _, region := range p.callbacks {
			for n := range region {
				callback := &region[n]
				rec := callback.parse(out.Values[len(out.Values)-1])
				if rec.Flags&SUCCESS == 0 {
					continue
				}
				if callback.settings&OVERRIDE != 0 {
					out.Flags &^= p.flags
				}
				out.Flags |= rec.Flags
				out.Values = append(out.Values[:len(out.Values)-1], rec.Values...)
				break // the region is consumed
			}
		}

		return out
	}

	return Parsed{Values: []string{line}}
}

// numchar matches one element of an allocation list: a decimal
// number, a quoted character or a quoted escape. The recursion walks
// the rest of the comma-separated list.
var numchar = parser{
	settings: RECURSIVE,
	regexes: rxs(
		`^\s*,?\s*(\d+)`,
		`^\s*,?\s*'(\\?\w)'`,
	),
}

// fillnum matches the optional fill argument of .align and .skip.
var fillnum = parser{
	regexes: rxs(`^\s*,\s*(\d+)`),
}

// operandParsers are the address-mode alternatives of operand slot n,
// tried in order.
func operandParsers(n int) []parser {
	displacement := []parser{
		{flags: Regind16(n), settings: OVERRIDE, regexes: rxs(`^\s*\[(\d+)\]`)},
		{flags: Regind16(n) | SymAbs(n), settings: OVERRIDE, regexes: rxs(`^\s*\[(\w+)\]`)},
	}

	return []parser{
		{
			flags:   Regdir(n),
			regexes: rxs(`^\s*r([0-7])`, `^\s*(ax|bx|cx|dx|sp|bp|pc)`),
			callbacks: [][]parser{
				{{flags: Reduced(n), regexes: rxs(`^(l|h)`)}},
				displacement,
			},
		},
		{
			flags:     Regind(n),
			regexes:   rxs(`^\s*\[\s*r([0-7])\s*\]`, `^\s*\[\s*(ax|bx|cx|dx|sp|bp|pc)\s*\]`),
			callbacks: [][]parser{displacement},
		},
		{flags: Mem(n), regexes: rxs(`^\s*\*(\d+)`)},
		{flags: Immed(n), regexes: rxs(`^\s*(\d+)`, `^\s*'(\\?\w)'`)},
		{flags: Immed(n) | SymAbs(n), regexes: rxs(`^\s*(\w+)`)},
		{flags: Immed(n) | SymRel(n), regexes: rxs(`^\s*\$(\w+)`)},
		{flags: Immed(n) | SymAdr(n), regexes: rxs(`^\s*&(\w+)`)},
	}
}

// parsers is the top-level cascade, tried in order against every
// source line. A LABEL match continues parsing the rest of the line;
// any other match ends it.
var parsers = []parser{
	{flags: LABEL, regexes: rxs(`^\s*(\w+):`)},
	{
		flags:     ALLOC,
		regexes:   rxs(`^\s*\.(byte|word|dword)`),
		callbacks: [][]parser{{numchar}},
	},
	{
		flags:     ALIGN,
		regexes:   rxs(`^\s*\.align\s*(\d+)`),
		callbacks: [][]parser{{fillnum}},
	},
	{
		flags:     SKIP,
		regexes:   rxs(`^\s*\.skip\s*(\d+)`),
		callbacks: [][]parser{{fillnum}},
	},
	{flags: SECTION, regexes: rxs(`^\s*\.section\s*"\.(\w+)"`, `^\s*\.(data|text|bss)`)},
	{flags: RELOC, regexes: rxs(`^\s*\.(global|extern|globl)\s*([\w,]+)`)},
	{flags: EQU, regexes: rxs(`^\s*\.equ\s*(\w+),\s*(\d+)`)},
	{
		flags:   INSTRUCTION,
		regexes: rxs(`^\s*(` + mnemonics + `)`),
		callbacks: [][]parser{
			{{flags: EXTENDED, regexes: rxs(`^(w)`)}},
			operandParsers(1),
			{{regexes: rxs(`^\s*,`)}},
			operandParsers(2),
		},
	},
	{flags: END, regexes: rxs(`^\s*\.end`)},
}
