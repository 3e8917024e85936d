// Package render projects a token sequence into plain text, pinyin and
// tone-colored markup. All functions are pure.
package render

import (
	"html"
	"strconv"
	"strings"

	"zhongwenanki/model"
)

type options struct {
	sep      string
	charSep  string
	wordSep  string
	numerals bool
	escape   bool
	element  string
	classPfx string
}

func defaults() options {
	return options{
		wordSep:  " ",
		escape:   true,
		element:  "mark",
		classPfx: "tone-",
	}
}

// Option configures a rendering.
type Option func(*options)

// WithSeparator sets the string placed between tokens by PlainText and
// ColoredMarkup. Default "".
func WithSeparator(sep string) Option {
	return func(o *options) { o.sep = sep }
}

// WithCharSeparator sets the string placed between the syllables of one
// Chinese token by Romanization. Default "".
func WithCharSeparator(sep string) Option {
	return func(o *options) { o.charSep = sep }
}

// WithWordSeparator sets the string placed between tokens by Romanization.
// Default " ".
func WithWordSeparator(sep string) Option {
	return func(o *options) { o.wordSep = sep }
}

// WithNumerals makes Romanization emit digit notation (hao3).
func WithNumerals() Option {
	return func(o *options) { o.numerals = true }
}

// WithoutEscaping inserts non-Chinese text into markup verbatim. Use it when
// the text already carries markup.
func WithoutEscaping() Option {
	return func(o *options) { o.escape = false }
}

// WithElement sets the element wrapping each character. Default "mark".
func WithElement(name string) Option {
	return func(o *options) { o.element = name }
}

// WithClassPrefix sets the class prefix; the tone number is appended.
// Default "tone-".
func WithClassPrefix(prefix string) Option {
	return func(o *options) { o.classPfx = prefix }
}

func build(opts []Option) options {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PlainText joins the raw text of tokens.
func PlainText(tokens []model.Token, opts ...Option) string {
	o := build(opts)
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(o.sep)
		}
		b.WriteString(t.Raw)
	}
	return b.String()
}

// Romanization renders tokens as pinyin. Non-Chinese tokens are kept
// verbatim, as are non-Han characters inside a Chinese token.
func Romanization(tokens []model.Token, opts ...Option) string {
	o := build(opts)
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(o.wordSep)
		}
		if !t.Chinese {
			b.WriteString(t.Raw)
			continue
		}
		for j, p := range t.Parts {
			if j > 0 {
				b.WriteString(o.charSep)
			}
			switch {
			case p.Syllable == nil:
				b.WriteString(p.Text)
			case o.numerals:
				b.WriteString(p.Syllable.Numeral)
			default:
				b.WriteString(p.Syllable.Romanization)
			}
		}
	}
	return b.String()
}

// ColoredMarkup wraps every Han character in an element whose class carries
// its tone, e.g. <mark class="tone-3">好</mark>.
func ColoredMarkup(tokens []model.Token, opts ...Option) string {
	o := build(opts)
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(o.sep)
		}
		if !t.Chinese {
			b.WriteString(o.text(t.Raw))
			continue
		}
		for _, p := range t.Parts {
			if p.Syllable == nil {
				b.WriteString(o.text(p.Text))
				continue
			}
			o.mark(&b, p.Text, p.Syllable.Tone)
		}
	}
	return b.String()
}

func (o options) text(s string) string {
	if o.escape {
		return html.EscapeString(s)
	}
	return s
}

func (o options) mark(b *strings.Builder, char string, tone model.Tone) {
	b.WriteString("<")
	b.WriteString(o.element)
	b.WriteString(` class="`)
	b.WriteString(o.classPfx)
	b.WriteString(strconv.Itoa(int(tone)))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(char))
	b.WriteString("</")
	b.WriteString(o.element)
	b.WriteString(">")
}
