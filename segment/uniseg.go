package segment

import "github.com/rivo/uniseg"

// UAX29 splits on Unicode word boundaries. Every Han character becomes a
// word of its own, Latin and digit runs stay together.
type UAX29 struct{}

func (UAX29) Segment(s string) []string {
	var out []string
	state := -1
	var word string
	for len(s) > 0 {
		word, s, state = uniseg.FirstWordInString(s, state)
		out = append(out, word)
	}
	return out
}
