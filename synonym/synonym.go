// Package synonym tone-colors the characters of a decorated synonym list
// such as
//
//	矢量 (shǐ liàng) - vector<br>向量 (xiàng liàng) - vector
//
// leaving the romanization, the gloss and any markup untouched.
package synonym

import (
	"regexp"
	"strings"

	"zhongwenanki/hanzi"
	"zhongwenanki/model"
	"zhongwenanki/render"
	"zhongwenanki/tokenize"
)

// Separator joins the entries of a synonym list.
const Separator = "<br>"

// entryPattern captures the leading characters and the parenthesised
// romanization of one entry.
var entryPattern = regexp.MustCompile(`^\s*([^\s(]+)\s*\(([^()]*)\)`)

// glossPattern additionally captures the free-text gloss after the dash.
var glossPattern = regexp.MustCompile(`^\s*([^\s(]+)\s*\(([^()]*)\)\s*(?:-\s*(.*))?$`)

// Annotator recolors synonym lists. The zero value uses only the
// romanization written in each entry.
type Annotator struct {
	// Oracle, when set, romanizes the characters of entries whose written
	// romanization does not cover them.
	Oracle tokenize.RomanizationOracle
	// Options are passed to render.ColoredMarkup.
	Options []render.Option
}

// RecolorSynonymList recolors decorated with the zero Annotator.
func RecolorSynonymList(decorated string) string {
	return Annotator{}.Recolor(decorated)
}

// Recolor wraps the characters of every well-formed entry of decorated in
// tone markup. Entries that do not match are passed through unchanged.
func (a Annotator) Recolor(decorated string) string {
	if decorated == "" {
		return ""
	}
	entries := strings.Split(decorated, Separator)
	for i, e := range entries {
		entries[i] = a.recolorEntry(e)
	}
	return strings.Join(entries, Separator)
}

func (a Annotator) recolorEntry(entry string) string {
	loc := entryPattern.FindStringSubmatchIndex(entry)
	if loc == nil {
		return entry
	}
	chars := entry[loc[2]:loc[3]]
	if !allHan(chars) {
		return entry
	}
	tokens, ok := a.align(chars, strings.Fields(entry[loc[4]:loc[5]]))
	if !ok {
		return entry
	}
	opts := append(append([]render.Option{}, a.Options...), render.WithoutEscaping())
	return entry[:loc[2]] + render.ColoredMarkup(tokens, opts...) + entry[loc[3]:]
}

// align treats chars as one Chinese token read by syllables, falling back
// to the oracle when the syllables run short.
func (a Annotator) align(chars string, syllables []string) ([]model.Token, bool) {
	word := []string{chars}
	tokens, err := tokenize.Align(chars, word, syllables, syllables)
	if err == nil {
		return tokens, true
	}
	if a.Oracle == nil {
		return nil, false
	}
	marks := a.Oracle.Romanize(chars, tokenize.Marks)
	numerals := a.Oracle.Romanize(chars, tokenize.Numerals)
	tokens, err = tokenize.Align(chars, word, marks, numerals)
	return tokens, err == nil
}

func allHan(s string) bool {
	for _, r := range s {
		if !hanzi.IsHan(r) {
			return false
		}
	}
	return s != ""
}

// Entry is one structured synonym.
type Entry struct {
	Characters   string `json:"characters"`
	Romanization string `json:"romanization"`
	Gloss        string `json:"gloss,omitempty"`
}

// String renders e as "<characters> (<romanization>) - <gloss>".
func (e Entry) String() string {
	return e.Characters + " (" + e.Romanization + ") - " + e.Gloss
}

// Format joins entries into a decorated synonym list.
func Format(entries []Entry) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return strings.Join(out, Separator)
}

// ParseEntry splits one decorated entry into its fields.
func ParseEntry(s string) (Entry, bool) {
	m := glossPattern.FindStringSubmatch(s)
	if m == nil {
		return Entry{}, false
	}
	return Entry{
		Characters:   m[1],
		Romanization: strings.TrimSpace(m[2]),
		Gloss:        strings.TrimSpace(m[3]),
	}, true
}

// Parse splits a decorated list into entries, skipping malformed ones.
func Parse(decorated string) []Entry {
	var out []Entry
	if decorated == "" {
		return out
	}
	for _, s := range strings.Split(decorated, Separator) {
		if e, ok := ParseEntry(s); ok {
			out = append(out, e)
		}
	}
	return out
}
