package annotate

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhongwenanki/hanzi"
	"zhongwenanki/render"
	"zhongwenanki/tokenize"
)

var words = map[string][]string{
	"你好世界": {"你好", "世界"},
	"世界":   {"世界"},
	"你好":   {"你好"},
}

var lexicon = tokenize.SegmenterFunc(func(s string) []string {
	if w, ok := words[s]; ok {
		return w
	}
	return []string{s}
})

var readings = map[rune][2]string{
	'你': {"nǐ", "ni3"},
	'好': {"hǎo", "hao3"},
	'世': {"shì", "shi4"},
	'界': {"jiè", "jie4"},
}

var oracle = tokenize.OracleFunc(func(s string, n tokenize.Notation) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		rd, ok := readings[r]
		switch {
		case !ok || !hanzi.IsHan(r):
			out = append(out, "")
		case n == tokenize.Numerals:
			out = append(out, rd[1])
		default:
			out = append(out, rd[0])
		}
	}
	return out
})

func newAnnotator(opts Options) *Annotator {
	return &Annotator{Tokenizer: tokenize.New(lexicon, oracle), Options: opts}
}

func TestAnnotate(t *testing.T) {
	a, err := newAnnotator(DefaultOptions()).Annotate("你好世界")
	require.NoError(t, err)
	assert.Equal(t, "你好世界", a.Text)
	assert.Equal(t, "你好世界", a.Plain)
	assert.Equal(t, "nǐhǎo shìjiè", a.Pinyin)
	assert.Equal(t, "ni3hao3 shi4jie4", a.Numerals)
	assert.Equal(t,
		`<mark class="tone-3">你</mark><mark class="tone-3">好</mark><mark class="tone-4">世</mark><mark class="tone-4">界</mark>`,
		a.Markup)
	assert.Len(t, a.Tokens, 2)
}

func TestAnnotateKeepsSpacesOutOfPinyin(t *testing.T) {
	opts := Options{CharSeparator: " ", WordSeparator: "  ", Collapse: true,
		Markup: []render.Option{render.WithClassPrefix("t")}}
	a, err := newAnnotator(opts).Annotate("你好 世界")
	require.NoError(t, err)
	assert.Equal(t, "你好 世界", a.Plain)
	assert.Equal(t, "nǐhǎo shìjiè", a.Pinyin)
	assert.Equal(t, "ni3hao3 shi4jie4", a.Numerals)
	assert.Equal(t,
		`<mark class="t3">你</mark><mark class="t3">好</mark> <mark class="t4">世</mark><mark class="t4">界</mark>`,
		a.Markup)
}

func TestAnnotateWhitespaceOnly(t *testing.T) {
	a, err := newAnnotator(DefaultOptions()).Annotate("   ")
	require.NoError(t, err)
	assert.Empty(t, a.Tokens)
	assert.NotNil(t, a.Tokens)
	assert.Equal(t, "", a.Plain)
	assert.Equal(t, "", a.Markup)
}

func TestAnnotateUnderflow(t *testing.T) {
	a := &Annotator{
		Tokenizer: tokenize.New(lexicon, tokenize.OracleFunc(func(string, tokenize.Notation) []string { return nil })),
		Options:   DefaultOptions(),
	}
	ann, err := a.Annotate("你好")
	assert.ErrorIs(t, err, tokenize.ErrAlignmentUnderflow)
	assert.Equal(t, "你好", ann.Text)
}
