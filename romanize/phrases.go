package romanize

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"gopkg.in/yaml.v3"

	"zhongwenanki/hanzi"
	"zhongwenanki/tokenize"
)

type reading struct {
	marks    []string
	numerals []string
}

// Phrases overrides the readings of a base oracle wherever a known phrase
// occurs, longest match first. It resolves polyphonic characters the base
// tables get wrong, e.g. 银行 yín háng against 行走 xíng zǒu.
type Phrases struct {
	base tokenize.RomanizationOracle
	idx  *trie.Trie
	size int
}

// NewPhrases builds the overlay. Each value holds the tone-marked syllables
// of its phrase separated by spaces, one per character.
func NewPhrases(base tokenize.RomanizationOracle, phrases map[string]string) (*Phrases, error) {
	p := &Phrases{base: base, idx: trie.New()}
	for phrase, syllables := range phrases {
		marks := strings.Fields(syllables)
		if n := utf8.RuneCountInString(phrase); n != len(marks) {
			return nil, fmt.Errorf("phrase %q has %d characters but %d syllables", phrase, n, len(marks))
		}
		numerals := make([]string, len(marks))
		for i, m := range marks {
			numerals[i] = hanzi.Numeral(m)
		}
		p.idx.Add(phrase, reading{marks: marks, numerals: numerals})
		p.size++
	}
	tracer().Infof("loaded %d phrase readings", p.size)
	return p, nil
}

// LoadPhrases reads a YAML mapping of phrase to syllables:
//
//	银行: yín háng
//	行长: háng zhǎng
func LoadPhrases(base tokenize.RomanizationOracle, r io.Reader) (*Phrases, error) {
	phrases := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&phrases); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding phrases: %w", err)
	}
	return NewPhrases(base, phrases)
}

// Len is the number of phrases known.
func (p *Phrases) Len() int {
	return p.size
}

func (p *Phrases) Romanize(sentence string, notation tokenize.Notation) []string {
	out := p.base.Romanize(sentence, notation)
	if p.size == 0 {
		return out
	}
	runes := []rune(sentence)
	for i := 0; i < len(runes) && i < len(out); {
		n, rd := p.longest(runes[i:])
		if n == 0 {
			i++
			continue
		}
		syllables := rd.marks
		if notation == tokenize.Numerals {
			syllables = rd.numerals
		}
		for k := 0; k < n && i+k < len(out); k++ {
			out[i+k] = syllables[k]
		}
		i += n
	}
	return out
}

// longest returns the length and reading of the longest phrase prefixing
// runes, or 0.
func (p *Phrases) longest(runes []rune) (int, reading) {
	var best reading
	n := 0
	for l := 1; l <= len(runes); l++ {
		prefix := string(runes[:l])
		if !p.idx.HasKeysWithPrefix(prefix) {
			break
		}
		if node, ok := p.idx.Find(prefix); ok {
			best = node.Meta().(reading)
			n = l
		}
	}
	return n, best
}
