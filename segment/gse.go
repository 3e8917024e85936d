package segment

import (
	"github.com/go-ego/gse"
)

// GseSegmenter segments Chinese text with the embedded gse dictionary.
type GseSegmenter struct {
	seg gse.Segmenter
	hmm bool
}

// NewGse loads the default dictionary. Unknown words are grouped with the
// HMM model. Latin text keeps its case.
func NewGse() (*GseSegmenter, error) {
	gse.ToLower = false
	seg, err := gse.New()
	if err != nil {
		return nil, err
	}
	return &GseSegmenter{seg: seg, hmm: true}, nil
}

func (g *GseSegmenter) Segment(s string) []string {
	words := restore(s, g.seg.Cut(s, g.hmm))
	tracer().Debugf("gse: %q -> %d words", s, len(words))
	return words
}
