// Package segment provides word segmenters for the tokenizer.
//
// Backends:
//
//	gse         dictionary-based Chinese segmentation (default)
//	kagome-ipa  kagome morphological analysis with the IPA dictionary
//	kagome-uni  kagome morphological analysis with the UniDic dictionary
//	uniseg      Unicode UAX #29 word boundaries, no dictionary
//	none        every space-separated piece is one token
package segment

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	"zhongwenanki/tokenize"
)

// tracer writes to trace with key 'zhongwenanki.segment'
func tracer() tracing.Trace {
	return tracing.Select("zhongwenanki.segment")
}

// Backend names accepted by New.
const (
	Gse       = "gse"
	KagomeIPA = "kagome-ipa"
	KagomeUni = "kagome-uni"
	Uniseg    = "uniseg"
	None      = "none"
)

var backends = map[string]func() (tokenize.Segmenter, error){
	Gse:       func() (tokenize.Segmenter, error) { return NewGse() },
	KagomeIPA: func() (tokenize.Segmenter, error) { return NewKagomeIPA() },
	KagomeUni: func() (tokenize.Segmenter, error) { return NewKagomeUni() },
	Uniseg:    func() (tokenize.Segmenter, error) { return UAX29{}, nil },
	None:      func() (tokenize.Segmenter, error) { return Whole{}, nil },
}

// New returns the segmenter registered under name.
func New(name string) (tokenize.Segmenter, error) {
	mk, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown segmenter %q (have %v)", name, Names())
	}
	seg, err := mk()
	if err != nil {
		return nil, fmt.Errorf("segmenter %s: %w", name, err)
	}
	tracer().Infof("using segmenter %s", name)
	return seg, nil
}

// Names lists the registered backends.
func Names() []string {
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Whole returns its input as a single token.
type Whole struct{}

func (Whole) Segment(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

// restore makes words exact substrings of s. Dictionary segmenters may
// normalize the text they return; the boundaries are kept and the surface
// is cut back out of s by character count. If the counts disagree s is
// returned as a single word.
func restore(s string, words []string) []string {
	if strings.Join(words, "") == s {
		return words
	}
	out := make([]string, 0, len(words))
	rest := s
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		i := 0
		for k := 0; k < n && i < len(rest); k++ {
			_, size := utf8.DecodeRuneInString(rest[i:])
			i += size
		}
		if i > 0 {
			out = append(out, rest[:i])
		}
		rest = rest[i:]
	}
	if rest != "" {
		tracer().Errorf("segmenter output does not cover %q, keeping it whole", s)
		return []string{s}
	}
	return out
}
