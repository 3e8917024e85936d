package model

import "unicode/utf8"

// Tone is a Mandarin tone class. Neutral is encoded as 5.
type Tone int

const (
	Tone1   Tone = 1
	Tone2   Tone = 2
	Tone3   Tone = 3
	Tone4   Tone = 4
	Neutral Tone = 5
)

// Valid reports whether t is one of the five tone classes.
func (t Tone) Valid() bool {
	return t >= Tone1 && t <= Neutral
}

// Syllable is one Han character with its reading.
type Syllable struct {
	Character    rune   `json:"character"`
	Romanization string `json:"romanization"`
	Numeral      string `json:"numeral,omitempty"`
	Tone         Tone   `json:"tone"`
}

// Part is one character of a Chinese token. Syllable is nil for characters
// outside the Han blocks, which are rendered as themselves.
type Part struct {
	Text     string    `json:"text"`
	Syllable *Syllable `json:"syllable,omitempty"`
}

// Token is one segmentation unit. Raw is the exact source substring.
type Token struct {
	Raw     string `json:"raw"`
	Chinese bool   `json:"chinese"`
	Parts   []Part `json:"parts,omitempty"`
}

// NewSpaceToken returns the token used to carry a user-authored space
// through segmentation.
func NewSpaceToken() Token {
	return Token{Raw: " "}
}

// IsSpace reports whether t is a preserved single space.
func (t Token) IsSpace() bool {
	return !t.Chinese && t.Raw == " "
}

// Content returns the raw text for non-Chinese tokens and the per-character
// texts for Chinese ones.
func (t Token) Content() []string {
	if !t.Chinese {
		return []string{t.Raw}
	}
	out := make([]string, len(t.Parts))
	for i, p := range t.Parts {
		out[i] = p.Text
	}
	return out
}

// Syllables returns the syllables of the Han characters in t, in order.
func (t Token) Syllables() []Syllable {
	var out []Syllable
	for _, p := range t.Parts {
		if p.Syllable != nil {
			out = append(out, *p.Syllable)
		}
	}
	return out
}

// Len is the number of characters in Raw.
func (t Token) Len() int {
	return utf8.RuneCountInString(t.Raw)
}
