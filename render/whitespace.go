package render

import "strings"

// CollapseSeparators cleans up a romanization joined with one space between
// syllables and two spaces between words: every run of two or more spaces
// becomes one space and every lone space is removed, so "quán qiú  dìng wèi"
// becomes "quánqiú dìngwèi". A string without any run of two spaces has no
// word boundaries to recover and is returned as is, which keeps the
// function idempotent.
func CollapseSeparators(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != ' ' {
			b.WriteByte(s[i])
			i++
			continue
		}
		run := 0
		for i < len(s) && s[i] == ' ' {
			run++
			i++
		}
		if run > 1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
