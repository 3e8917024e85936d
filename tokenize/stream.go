package tokenize

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"zhongwenanki/ingest"
)

// Tokenized pairs an ingest.Sentence with the tokens produced for it.
type Tokenized struct {
	Sentence ingest.Sentence
	Tokens   []Token
	Err      error
}

// Stream consumes sentences from in with the given number of workers and
// publishes one Tokenized per sentence. Results arrive in completion order;
// Sentence.Seq restores input order. The returned channel is closed once in
// is drained or ctx is done.
func (t *Tokenizer) Stream(ctx context.Context, in <-chan ingest.Sentence, workers int) <-chan Tokenized {
	if workers < 1 {
		workers = 1
	}
	out := make(chan Tokenized, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case s, ok := <-in:
					if !ok {
						return
					}
					toks, err := t.Tokenize(s.Text)
					select {
					case <-ctx.Done():
						return
					case out <- Tokenized{Sentence: s, Tokens: toks, Err: err}:
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Collect drains ch and returns the results ordered by Sentence.Seq.
func Collect(ch <-chan Tokenized) []Tokenized {
	var res []Tokenized
	for r := range ch {
		res = append(res, r)
	}
	slices.SortFunc(res, func(a, b Tokenized) int {
		return cmp.Compare(a.Sentence.Seq, b.Sentence.Seq)
	})
	return res
}
