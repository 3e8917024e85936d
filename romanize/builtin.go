package romanize

import (
	"bytes"
	_ "embed"
)

//go:embed phrases.yaml
var builtinPhrases []byte

// NewDefault returns the go-pinyin oracle overlaid with the built-in readings
// of common words whose characters read differently in context, e.g. 银行,
// 音乐, 睡觉 and 觉得.
func NewDefault() (*Phrases, error) {
	return LoadPhrases(NewPinyin(), bytes.NewReader(builtinPhrases))
}
