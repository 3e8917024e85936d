package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"zhongwenanki/model"
)

func syl(char rune, mark, numeral string, tone model.Tone) *model.Syllable {
	return &model.Syllable{Character: char, Romanization: mark, Numeral: numeral, Tone: tone}
}

func word(parts ...model.Part) model.Token {
	var raw strings.Builder
	for _, p := range parts {
		raw.WriteString(p.Text)
	}
	return model.Token{Raw: raw.String(), Chinese: true, Parts: parts}
}

func han(char rune, mark, numeral string, tone model.Tone) model.Part {
	return model.Part{Text: string(char), Syllable: syl(char, mark, numeral, tone)}
}

// helloWorld is 你好世界 segmented as 你好 | 世界.
var helloWorld = []model.Token{
	word(han('你', "nǐ", "ni3", 3), han('好', "hǎo", "hao3", 3)),
	word(han('世', "shì", "shi4", 4), han('界', "jiè", "jie4", 4)),
}

func TestRomanization(t *testing.T) {
	assert.Equal(t, "nǐ hǎo shì jiè",
		Romanization(helloWorld, WithCharSeparator(" "), WithWordSeparator(" ")))
	assert.Equal(t, "nǐhǎo shìjiè", Romanization(helloWorld))
	assert.Equal(t, "ni3hao3/shi4jie4", Romanization(helloWorld, WithNumerals(), WithWordSeparator("/")))
}

func TestRomanizationKeepsNonChinese(t *testing.T) {
	tokens := []model.Token{
		word(model.Part{Text: "C"}, model.Part{Text: "+"}, han('和', "hé", "he2", 2)),
		{Raw: "！"},
	}
	assert.Equal(t, "C + hé ！", Romanization(tokens, WithCharSeparator(" ")))
}

func TestPlainText(t *testing.T) {
	tokens := append(append([]model.Token{}, helloWorld...), model.NewSpaceToken(), model.Token{Raw: "ok"})
	assert.Equal(t, "你好世界 ok", PlainText(tokens))
	assert.Equal(t, "你好|世界| |ok", PlainText(tokens, WithSeparator("|")))
	assert.Equal(t, "", PlainText(nil))
}

func TestColoredMarkup(t *testing.T) {
	tokens := append(append([]model.Token{}, helloWorld[0]), model.Token{Raw: "<b>&"})
	got := ColoredMarkup(tokens)
	assert.Equal(t,
		`<mark class="tone-3">你</mark><mark class="tone-3">好</mark>&lt;b&gt;&amp;`, got)

	got = ColoredMarkup(tokens, WithoutEscaping(), WithElement("span"), WithClassPrefix("t"))
	assert.Equal(t, `<span class="t3">你</span><span class="t3">好</span><b>&`, got)
}

func TestColoredMarkupNeutralTone(t *testing.T) {
	tokens := []model.Token{word(han('吗', "ma", "ma", model.Neutral))}
	assert.Equal(t, `<mark class="tone-5">吗</mark>`, ColoredMarkup(tokens))
}

func TestColoredMarkupSeparator(t *testing.T) {
	assert.Equal(t,
		`<mark class="tone-3">你</mark><mark class="tone-3">好</mark> <mark class="tone-4">世</mark><mark class="tone-4">界</mark>`,
		ColoredMarkup(helloWorld, WithSeparator(" ")))
}

func TestDebug(t *testing.T) {
	tokens := append(append([]model.Token{}, helloWorld[0]), model.Token{Raw: "，"})
	assert.Equal(t, "CN[你(nǐ,3),好(hǎo,3)] | TXT[，]", Debug(tokens))
	assert.Equal(t, "", Debug(nil))
}

func TestCollapseSeparators(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"quán qiú  dìng wèi  xì tǒng", "quánqiú dìngwèi xìtǒng"},
		{"nǐ hǎo", "nǐ hǎo"},
		{"nǐ   hǎo", "nǐ hǎo"},
		{"  a b  ", " ab "},
		{"", ""},
		{" ", " "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CollapseSeparators(tt.in), "input %q", tt.in)
	}
}

func TestCollapseSeparatorsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringOf(rapid.SampledFrom([]rune("ab ǐ "))).Draw(t, "s")
		once := CollapseSeparators(s)
		if twice := CollapseSeparators(once); twice != once {
			t.Fatalf("not idempotent: %q -> %q -> %q", s, once, twice)
		}
		if strings.Contains(once, "  ") {
			t.Fatalf("%q still has a double space", once)
		}
	})
}

func FuzzCollapseSeparators(f *testing.F) {
	f.Add("quán qiú  dìng wèi")
	f.Add("   ")
	f.Fuzz(func(t *testing.T, s string) {
		once := CollapseSeparators(s)
		if CollapseSeparators(once) != once {
			t.Errorf("not idempotent for %q", s)
		}
		if len(once) > len(s) {
			t.Errorf("output longer than input for %q", s)
		}
	})
}
