// Package finder defines the lookups that fill a flashcard: a meaning, an
// example sentence and a synonym list for one word. Each kind is a separate
// capability so that callers can mix sources.
package finder

import (
	"context"
	"errors"

	"zhongwenanki/model"
)

// ErrNotFound is returned when a source has nothing for a word.
var ErrNotFound = errors.New("not found")

// Content is a piece of Chinese text with its translation and readings.
type Content struct {
	Chinese string `json:"chinese" yaml:"chinese"`
	English string `json:"english" yaml:"english"`
	Pinyin  string `json:"pinyin" yaml:"pinyin,omitempty"`
	Colored string `json:"colored" yaml:"-"`
}

// Synonyms is a <br>-joined synonym list, plain and tone-colored.
type Synonyms struct {
	Summary        string `json:"summary"`
	SummaryColored string `json:"summary_colored"`
}

type MeaningFinder interface {
	FindMeaning(ctx context.Context, word string) (Content, error)
}

type SentenceFinder interface {
	FindSentence(ctx context.Context, word string) (Content, error)
}

type SynonymsFinder interface {
	FindSynonyms(ctx context.Context, word string) (Synonyms, error)
}

// Empty finds nothing and never fails.
type Empty struct{}

func (Empty) FindMeaning(context.Context, string) (Content, error)   { return Content{}, nil }
func (Empty) FindSentence(context.Context, string) (Content, error)  { return Content{}, nil }
func (Empty) FindSynonyms(context.Context, string) (Synonyms, error) { return Synonyms{}, nil }

// Card gathers every lookup for one word.
type Card struct {
	Word     string   `json:"word"`
	Meaning  Content  `json:"meaning"`
	Sentence Content  `json:"sentence"`
	Synonyms Synonyms `json:"synonyms"`
}

// Finders bundles one source per lookup kind.
type Finders struct {
	Meaning  MeaningFinder
	Sentence SentenceFinder
	Synonyms SynonymsFinder
}

// Find runs every lookup for word. A source reporting ErrNotFound leaves
// its field empty; any other error aborts.
func (f Finders) Find(ctx context.Context, word string) (Card, error) {
	card := Card{Word: word}
	var err error
	if card.Meaning, err = f.Meaning.FindMeaning(ctx, word); err != nil && !errors.Is(err, ErrNotFound) {
		return card, err
	}
	if card.Sentence, err = f.Sentence.FindSentence(ctx, word); err != nil && !errors.Is(err, ErrNotFound) {
		return card, err
	}
	if card.Synonyms, err = f.Synonyms.FindSynonyms(ctx, word); err != nil && !errors.Is(err, ErrNotFound) {
		return card, err
	}
	return card, nil
}

// Lookup finds the meaning of every Chinese token, in order. Tokens the
// source does not know are skipped.
func Lookup(ctx context.Context, tokens []model.Token, m MeaningFinder) ([]Content, error) {
	if tokens == nil {
		return nil, nil
	}
	out := make([]Content, 0, len(tokens))
	for _, t := range tokens {
		if !t.Chinese {
			continue
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}
		c, err := m.FindMeaning(ctx, t.Raw)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}
