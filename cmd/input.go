package cmd

import (
	"context"
	"io"

	"zhongwenanki/ingest"
)

// sentences yields args as sentences, or the lines of stdin when no
// argument is given.
func sentences(ctx context.Context, stdin io.Reader, args []string) (<-chan ingest.Sentence, <-chan error) {
	if len(args) == 0 {
		return ingest.Read(ctx, stdin)
	}
	out := make(chan ingest.Sentence, len(args))
	errs := make(chan error)
	for i, a := range args {
		out <- ingest.NewSentence(i, a)
	}
	close(out)
	close(errs)
	return out, errs
}

// lines collects every sentence text from sentences.
func lines(ctx context.Context, stdin io.Reader, args []string) ([]string, error) {
	in, errs := sentences(ctx, stdin, args)
	var out []string
	for s := range in {
		out = append(out, s.Text)
	}
	if err := <-errs; err != nil {
		return out, err
	}
	return out, nil
}
