// Package romanize provides romanization oracles for the tokenizer: pinyin
// from the go-pinyin tables, phrase overrides for polyphonic characters and
// a memoizing wrapper.
package romanize

import (
	"unicode/utf8"

	"github.com/mozillazg/go-pinyin"
	"github.com/npillmayer/schuko/tracing"

	"zhongwenanki/hanzi"
	"zhongwenanki/tokenize"
)

// tracer writes to trace with key 'zhongwenanki.romanize'
func tracer() tracing.Trace {
	return tracing.Select("zhongwenanki.romanize")
}

// Pinyin romanizes character by character with the most frequent reading.
// Characters outside the Han blocks, and Han characters missing from the
// tables, get an empty entry.
type Pinyin struct {
	marks    pinyin.Args
	numerals pinyin.Args
}

// NewPinyin returns the table-driven oracle.
func NewPinyin() *Pinyin {
	marks := pinyin.NewArgs()
	marks.Style = pinyin.Tone
	numerals := pinyin.NewArgs()
	numerals.Style = pinyin.Tone3
	return &Pinyin{marks: marks, numerals: numerals}
}

func (p *Pinyin) Romanize(sentence string, notation tokenize.Notation) []string {
	a := p.marks
	if notation == tokenize.Numerals {
		a = p.numerals
	}
	out := make([]string, 0, utf8.RuneCountInString(sentence))
	for _, r := range sentence {
		out = append(out, single(r, a))
	}
	return out
}

func single(r rune, a pinyin.Args) string {
	if !hanzi.IsHan(r) {
		return ""
	}
	py := pinyin.SinglePinyin(r, a)
	if len(py) == 0 {
		tracer().Debugf("no reading for %c (U+%04X)", r, r)
		return ""
	}
	return py[0]
}
