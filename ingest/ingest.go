package ingest

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentence is one input line queued for annotation.
type Sentence struct {
	ID        string    `json:"id"`
	Seq       int       `json:"seq"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSentence wraps text without altering it; spacing is significant.
func NewSentence(seq int, text string) Sentence {
	return Sentence{
		ID:        uuid.NewString(),
		Seq:       seq,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

// Read streams the lines of r as sentences. Line terminators are removed,
// everything else is kept verbatim. Both channels are closed when r is
// exhausted or ctx is done.
func Read(ctx context.Context, r io.Reader) (<-chan Sentence, <-chan error) {
	out := make(chan Sentence, 16)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		seq := 0
		for scanner.Scan() {
			s := NewSentence(seq, strings.TrimSuffix(scanner.Text(), "\r"))
			seq++
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case out <- s:
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()
	return out, errs
}
