// Package hanzi classifies Han characters and extracts tones from pinyin
// syllables.
package hanzi

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidArgument is returned when a single character is expected but the
// input holds zero or several.
var ErrInvalidArgument = errors.New("invalid argument")

type runeRange struct {
	lo, hi rune
}

// hanRanges lists the CJK ideograph blocks.
var hanRanges = []runeRange{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3400, 0x4DBF},   // Extension A
	{0x20000, 0x2A6DF}, // Extension B
	{0x2A700, 0x2B73F}, // Extension C
	{0x2B740, 0x2B81F}, // Extension D
	{0x2B820, 0x2CEAF}, // Extension E
	{0x2CEB0, 0x2EBEF}, // Extension F
	{0xF900, 0xFAFF},   // Compatibility Ideographs
}

// IsHan returns true if r is in one of the CJK ideograph blocks.
func IsHan(r rune) bool {
	for _, rr := range hanRanges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// IsHanString is IsHan for a string that must hold exactly one character.
func IsHanString(s string) (bool, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
		return false, fmt.Errorf("%w: expected one character, got %q", ErrInvalidArgument, s)
	}
	return IsHan(r), nil
}

// ContainsHan reports whether any character of s is Han.
func ContainsHan(s string) bool {
	for _, r := range s {
		if IsHan(r) {
			return true
		}
	}
	return false
}
