package tokenize

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"zhongwenanki/hanzi"
	"zhongwenanki/model"
)

// Token is one segmentation unit with its readings.
type Token = model.Token

// ErrAlignmentUnderflow is returned when the romanization arrays hold fewer
// entries than the tokens require.
var ErrAlignmentUnderflow = errors.New("alignment underflow")

// Segmenter splits a sentence into word-sized substrings. It may drop
// whitespace.
type Segmenter interface {
	Segment(sentence string) []string
}

// SegmenterFunc adapts a plain function to Segmenter.
type SegmenterFunc func(sentence string) []string

func (f SegmenterFunc) Segment(sentence string) []string { return f(sentence) }

// Notation selects how a RomanizationOracle writes tones.
type Notation int

const (
	Marks    Notation = iota // tone marks: hǎo
	Numerals                 // trailing digits: hao3
)

func (n Notation) String() string {
	if n == Numerals {
		return "numerals"
	}
	return "marks"
}

// RomanizationOracle returns one reading per character of the whole
// sentence, so polyphonic characters are resolved in context. Non-Han
// characters get an entry of their own, possibly empty.
type RomanizationOracle interface {
	Romanize(sentence string, notation Notation) []string
}

// OracleFunc adapts a plain function to RomanizationOracle.
type OracleFunc func(sentence string, notation Notation) []string

func (f OracleFunc) Romanize(sentence string, notation Notation) []string { return f(sentence, notation) }

// Align walks the segmenter tokens and the per-character romanization arrays
// with a single cursor and builds the token sequence. marks and numerals must
// have been computed over the whole sentence.
func Align(sentence string, tokens, marks, numerals []string) ([]Token, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, nil
	}
	out := make([]Token, 0, len(tokens))
	i := 0 // cursor into marks and numerals
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		n := utf8.RuneCountInString(tok)
		if !hanzi.ContainsHan(tok) {
			out = append(out, Token{Raw: tok})
			i += n
			continue
		}
		if i+n > len(marks) || i+n > len(numerals) {
			return nil, fmt.Errorf("%w: token %q at cursor %d needs %d readings, have %d marks and %d numerals",
				ErrAlignmentUnderflow, tok, i, n, len(marks)-i, len(numerals)-i)
		}
		parts := make([]model.Part, 0, n)
		k := 0
		for _, r := range tok {
			part := model.Part{Text: string(r)}
			if hanzi.IsHan(r) {
				part.Syllable = newSyllable(r, marks[i+k], numerals[i+k])
			}
			parts = append(parts, part)
			k++
		}
		out = append(out, Token{Raw: tok, Chinese: true, Parts: parts})
		i += n
	}
	return out, nil
}

func newSyllable(r rune, mark, numeral string) *model.Syllable {
	tone := hanzi.ToneOf(mark)
	if tone == model.Neutral {
		tone = hanzi.ToneOf(numeral)
	}
	return &model.Syllable{
		Character:    r,
		Romanization: mark,
		Numeral:      numeral,
		Tone:         tone,
	}
}

// SegmentPreservingSpaces splits sentence on single spaces, segments every
// piece and puts a " " token back between pieces, so spacing survives
// segmenters that drop whitespace.
func SegmentPreservingSpaces(sentence string, seg Segmenter) []string {
	pieces := strings.Split(sentence, " ")
	out := make([]string, 0, len(pieces)*2)
	for j, piece := range pieces {
		if j > 0 {
			out = append(out, " ")
		}
		if piece == "" {
			continue
		}
		for _, s := range seg.Segment(piece) {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Tokenizer composes a Segmenter and a RomanizationOracle.
type Tokenizer struct {
	Segmenter Segmenter
	Oracle    RomanizationOracle
}

// New returns a Tokenizer using seg and oracle.
func New(seg Segmenter, oracle RomanizationOracle) *Tokenizer {
	return &Tokenizer{Segmenter: seg, Oracle: oracle}
}

// Tokenize segments sentence, romanizes it once as a whole and aligns both.
func (t *Tokenizer) Tokenize(sentence string) ([]Token, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, nil
	}
	tokens := SegmentPreservingSpaces(sentence, t.Segmenter)
	marks := t.Oracle.Romanize(sentence, Marks)
	numerals := t.Oracle.Romanize(sentence, Numerals)
	return Align(sentence, tokens, marks, numerals)
}
