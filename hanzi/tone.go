package hanzi

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"zhongwenanki/model"
)

// toneVowels maps each tone to its accented vowels.
var toneVowels = map[model.Tone]string{
	model.Tone1: "āēīōūǖĀĒĪŌŪǕ",
	model.Tone2: "áéíóúǘÁÉÍÓÚǗ",
	model.Tone3: "ǎěǐǒǔǚǍĚǏǑǓǙ",
	model.Tone4: "àèìòùǜÀÈÌÒÙǛ",
}

// accentTone is the reverse lookup of toneVowels, built once.
var accentTone = func() map[rune]model.Tone {
	m := make(map[rune]model.Tone)
	for tone, vowels := range toneVowels {
		for _, v := range vowels {
			m[v] = tone
		}
	}
	return m
}()

// ToneOf derives the tone of a pinyin syllable written either with a tone
// mark ("hǎo") or with a trailing digit ("hao3"). An accented vowel takes
// priority over a digit. Anything else is neutral.
func ToneOf(syllable string) model.Tone {
	s := norm.NFC.String(syllable)
	for _, r := range s {
		if tone, ok := accentTone[r]; ok {
			return tone
		}
	}
	if n := len(s); n > 0 {
		if d := s[n-1]; d >= '1' && d <= '4' {
			return model.Tone(d - '0')
		}
	}
	return model.Neutral
}

// toneMarks are the combining accents that carry a tone in decomposed form.
var toneMarks = map[rune]bool{
	'\u0304': true, // macron, tone 1
	'\u0301': true, // acute, tone 2
	'\u030C': true, // caron, tone 3
	'\u0300': true, // grave, tone 4
}

// Numeral rewrites a tone-marked syllable in digit notation: "lǜ" becomes
// "lü4". Neutral syllables get no digit. Syllables that already end in a
// digit are returned unchanged.
func Numeral(syllable string) string {
	if n := len(syllable); n > 0 && syllable[n-1] >= '0' && syllable[n-1] <= '9' {
		return syllable
	}
	tone := ToneOf(syllable)
	var b strings.Builder
	for _, r := range norm.NFD.String(syllable) {
		if !toneMarks[r] {
			b.WriteRune(r)
		}
	}
	s := norm.NFC.String(b.String())
	if tone == model.Neutral {
		return s
	}
	return s + strconv.Itoa(int(tone))
}
