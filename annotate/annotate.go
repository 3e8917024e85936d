package annotate

import (
	"zhongwenanki/model"
	"zhongwenanki/render"
	"zhongwenanki/tokenize"
)

// Annotation is the result of annotating one sentence.
type Annotation struct {
	SentenceID string        `json:"sentence_id,omitempty"`
	Text       string        `json:"text"`
	Tokens     []model.Token `json:"tokens"`
	Plain      string        `json:"plain"`
	Pinyin     string        `json:"pinyin"`
	Numerals   string        `json:"numerals"`
	Markup     string        `json:"markup"`
}

// Options selects the separators and markup of the projections.
type Options struct {
	CharSeparator   string
	WordSeparator   string
	MarkupSeparator string
	// Collapse passes the romanizations through render.CollapseSeparators.
	Collapse bool
	// Markup options such as render.WithClassPrefix.
	Markup []render.Option
}

// DefaultOptions glues the syllables of a word and separates words with
// one space.
func DefaultOptions() Options {
	return Options{WordSeparator: " "}
}

// Annotator tokenizes sentences and renders them.
type Annotator struct {
	Tokenizer *tokenize.Tokenizer
	Options   Options
}

// Annotate tokenizes text and builds its annotation.
func (a *Annotator) Annotate(text string) (Annotation, error) {
	tokens, err := a.Tokenizer.Tokenize(text)
	if err != nil {
		return Annotation{Text: text}, err
	}
	return Build(text, tokens, a.Options), nil
}

// Build renders tokens into an annotation. Preserved spaces take part in
// the plain text and the markup; the romanizations separate words with
// WordSeparator only.
func Build(text string, tokens []model.Token, opts Options) Annotation {
	words := withoutSpaces(tokens)
	pinyin := render.Romanization(words,
		render.WithCharSeparator(opts.CharSeparator), render.WithWordSeparator(opts.WordSeparator))
	numerals := render.Romanization(words, render.WithNumerals(),
		render.WithCharSeparator(opts.CharSeparator), render.WithWordSeparator(opts.WordSeparator))
	if opts.Collapse {
		pinyin = render.CollapseSeparators(pinyin)
		numerals = render.CollapseSeparators(numerals)
	}
	markup := append([]render.Option{render.WithSeparator(opts.MarkupSeparator)}, opts.Markup...)
	if tokens == nil {
		tokens = []model.Token{}
	}
	return Annotation{
		Text:     text,
		Tokens:   tokens,
		Plain:    render.PlainText(tokens),
		Pinyin:   pinyin,
		Numerals: numerals,
		Markup:   render.ColoredMarkup(tokens, markup...),
	}
}

func withoutSpaces(tokens []model.Token) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsSpace() {
			out = append(out, t)
		}
	}
	return out
}
