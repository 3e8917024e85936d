package render

import (
	"fmt"
	"strings"

	"zhongwenanki/model"
)

// Debug renders tokens for inspection: CN[你(nǐ,3),好(hǎo,3)] | TXT[，].
func Debug(tokens []model.Token) string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !t.Chinese {
			out = append(out, "TXT["+t.Raw+"]")
			continue
		}
		chars := make([]string, 0, len(t.Parts))
		for _, p := range t.Parts {
			if p.Syllable == nil {
				chars = append(chars, p.Text)
				continue
			}
			chars = append(chars, fmt.Sprintf("%s(%s,%d)", p.Text, p.Syllable.Romanization, p.Syllable.Tone))
		}
		out = append(out, "CN["+strings.Join(chars, ",")+"]")
	}
	return strings.Join(out, " | ")
}
