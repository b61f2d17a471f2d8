package asm

import (
	"math/bits"
	"strconv"
	"unicode"
)

// bitsize returns the number of significant bits of num.
func bitsize(num uint) int {
	return bits.Len(num)
}

// sctoi converts a numeric token to its value. A single letter
// converts to its character code; \n and \t to 10 and 9.
func sctoi(str string) (int, error) {
	if value, err := strconv.Atoi(str); err == nil {
		return value, nil
	}
	if len(str) == 1 && unicode.IsLetter(rune(str[0])) {
		return int(str[0]), nil
	}
	switch str {
	case `\n`:
		return '\n', nil
	case `\t`:
		return '\t', nil
	}
	return 0, ErrBadNumber(str)
}
