package hanzi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"zhongwenanki/model"
)

func TestIsHan(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'你', true},
		{'㐀', true},          // Extension A
		{'\U00020000', true}, // Extension B
		{'\U0002CEB0', true}, // Extension F
		{'豈', true},          // Compatibility
		{'a', false},
		{'，', false},
		{'。', false},
		{'ひ', false},
		{' ', false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHan(tt.r), "IsHan(%q)", tt.r)
	}
}

func TestIsHanStringRejectsNonSingleCharacters(t *testing.T) {
	ok, err := IsHanString("好")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsHanString("x")
	require.NoError(t, err)
	assert.False(t, ok)

	for _, s := range []string{"", "你好", "ab", "\xff"} {
		_, err := IsHanString(s)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "input %q", s)
	}
}

func TestContainsHan(t *testing.T) {
	assert.True(t, ContainsHan("C++和"))
	assert.False(t, ContainsHan("Python"))
	assert.False(t, ContainsHan(""))
}

func TestToneOf(t *testing.T) {
	tests := []struct {
		syllable string
		want     model.Tone
	}{
		{"mā", model.Tone1},
		{"má", model.Tone2},
		{"mǎ", model.Tone3},
		{"mà", model.Tone4},
		{"ma", model.Neutral},
		{"lǜ", model.Tone4},
		{"LÜ2", model.Tone2},
		{"Ǎ", model.Tone3},
		{"hao3", model.Tone3},
		{"shi4", model.Tone4},
		{"ma5", model.Neutral},
		{"ma0", model.Neutral},
		{"ha3o", model.Neutral}, // digit is not trailing
		{"", model.Neutral},
		{"，", model.Neutral},
		{"hǎo4", model.Tone3},      // mark wins over digit
		{"ha\u0301o", model.Tone2}, // combining acute accent
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToneOf(tt.syllable), "ToneOf(%q)", tt.syllable)
	}
}

func TestToneOfIsTotal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "syllable")
		if tone := ToneOf(s); !tone.Valid() {
			rt.Fatalf("ToneOf(%q) = %d, outside 1..5", s, tone)
		}
	})
}

func TestNumeral(t *testing.T) {
	tests := []struct {
		mark, want string
	}{
		{"hǎo", "hao3"},
		{"lǜ", "lü4"},
		{"shì", "shi4"},
		{"Zhōng", "Zhong1"},
		{"de", "de"},
		{"hao3", "hao3"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Numeral(tt.mark), "Numeral(%q)", tt.mark)
	}
}

func TestNumeralKeepsTone(t *testing.T) {
	for _, mark := range []string{"mā", "má", "mǎ", "mà", "ma", "nǚ", "lüè"} {
		assert.Equal(t, ToneOf(mark), ToneOf(Numeral(mark)), "mark %q", mark)
	}
}
