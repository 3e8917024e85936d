package segment

import (
	"sync"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Kagome segments with a kagome tokenizer. Han runs are split along the
// words of the Japanese dictionary, which share most vocabulary with
// written Chinese; unknown runs are grouped by character class.
type Kagome struct {
	t *tokenizer.Tokenizer
}

var (
	ipaOnce, uniOnce     sync.Once
	ipaKagome, uniKagome *Kagome
	ipaErr, uniErr       error
)

// NewKagome builds a segmenter on d.
func NewKagome(d *dict.Dict) (*Kagome, error) {
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{t: t}, nil
}

// NewKagomeIPA returns the shared segmenter on the IPA dictionary. The
// dictionary is loaded once.
func NewKagomeIPA() (*Kagome, error) {
	ipaOnce.Do(func() {
		ipaKagome, ipaErr = NewKagome(ipa.Dict())
	})
	return ipaKagome, ipaErr
}

// NewKagomeUni returns the shared segmenter on the UniDic dictionary.
func NewKagomeUni() (*Kagome, error) {
	uniOnce.Do(func() {
		uniKagome, uniErr = NewKagome(uni.Dict())
	})
	return uniKagome, uniErr
}

func (k *Kagome) Segment(s string) []string {
	words := restore(s, k.t.Wakati(s))
	tracer().Debugf("kagome: %q -> %d words", s, len(words))
	return words
}
