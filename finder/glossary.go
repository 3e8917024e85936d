package finder

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"zhongwenanki/annotate"
	"zhongwenanki/render"
	"zhongwenanki/synonym"
	"zhongwenanki/tokenize"
)

// GlossaryEntry is one word of a local glossary file.
type GlossaryEntry struct {
	English  string   `yaml:"english"`
	Sentence Content  `yaml:"sentence"`
	Synonyms []string `yaml:"synonyms"`
}

// Glossary answers every lookup from a local word list. Readings and tone
// colors are computed with the tokenizer, so the file only needs the
// Chinese text and the translations.
//
//	矢量:
//	  english: vector
//	  sentence:
//	    chinese: 这是一个矢量。
//	    english: This is a vector.
//	  synonyms: [向量]
type Glossary struct {
	entries   map[string]GlossaryEntry
	tokenizer *tokenize.Tokenizer
	markup    []render.Option
	// MaxSynonyms caps the synonym list. Zero means no limit.
	MaxSynonyms int
}

// NewGlossary serves entries, reading them with tk.
func NewGlossary(entries map[string]GlossaryEntry, tk *tokenize.Tokenizer, markup ...render.Option) *Glossary {
	return &Glossary{entries: entries, tokenizer: tk, markup: markup, MaxSynonyms: 3}
}

// LoadGlossary decodes a YAML glossary from r.
func LoadGlossary(r io.Reader, tk *tokenize.Tokenizer, markup ...render.Option) (*Glossary, error) {
	entries := map[string]GlossaryEntry{}
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding glossary: %w", err)
	}
	return NewGlossary(entries, tk, markup...), nil
}

// Len is the number of words in the glossary.
func (g *Glossary) Len() int {
	return len(g.entries)
}

func (g *Glossary) FindMeaning(ctx context.Context, word string) (Content, error) {
	e, ok := g.entries[word]
	if !ok {
		return Content{}, fmt.Errorf("meaning of %q: %w", word, ErrNotFound)
	}
	return g.content(word, e.English)
}

func (g *Glossary) FindSentence(ctx context.Context, word string) (Content, error) {
	e, ok := g.entries[word]
	if !ok || e.Sentence.Chinese == "" {
		return Content{}, fmt.Errorf("sentence for %q: %w", word, ErrNotFound)
	}
	return g.content(e.Sentence.Chinese, e.Sentence.English)
}

func (g *Glossary) FindSynonyms(ctx context.Context, word string) (Synonyms, error) {
	e, ok := g.entries[word]
	if !ok {
		return Synonyms{}, fmt.Errorf("synonyms of %q: %w", word, ErrNotFound)
	}
	syns := e.Synonyms
	if g.MaxSynonyms > 0 && len(syns) > g.MaxSynonyms {
		syns = syns[:g.MaxSynonyms]
	}
	list := make([]synonym.Entry, 0, len(syns))
	for _, s := range syns {
		c, err := g.content(s, g.entries[s].English)
		if err != nil {
			return Synonyms{}, err
		}
		list = append(list, synonym.Entry{Characters: s, Romanization: c.Pinyin, Gloss: c.English})
	}
	summary := synonym.Format(list)
	return Synonyms{
		Summary:        summary,
		SummaryColored: synonym.Annotator{Options: g.markup}.Recolor(summary),
	}, nil
}

// content reads chinese with syllables separated by spaces.
func (g *Glossary) content(chinese, english string) (Content, error) {
	tokens, err := g.tokenizer.Tokenize(chinese)
	if err != nil {
		return Content{}, fmt.Errorf("reading %q: %w", chinese, err)
	}
	a := annotate.Build(chinese, tokens, annotate.Options{
		CharSeparator: " ",
		WordSeparator: " ",
		Markup:        g.markup,
	})
	return Content{
		Chinese: chinese,
		English: english,
		Pinyin:  a.Pinyin,
		Colored: a.Markup,
	}, nil
}
