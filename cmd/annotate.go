package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"zhongwenanki/annotate"
	"zhongwenanki/logger"
	"zhongwenanki/tokenize"
)

var annotateField string

var annotateCmd = &cobra.Command{
	Use:   "annotate [sentence...]",
	Short: "Annotate sentences with pinyin and tone markup",
	Long: `Annotate each sentence given as argument, or each line of standard input.
Every annotation is written as one JSON object per line. With --field only
the selected projection is printed.`,
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateField, "field", "f", "",
		"print only one field: plain, pinyin, numerals or markup")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	tk, err := newTokenizer(cfg)
	if err != nil {
		return err
	}
	if cfg.LogDir != "" {
		if err := logger.InitLogs(cfg.LogDir); err != nil {
			return fmt.Errorf("init logs: %w", err)
		}
	}
	ctx := cmd.Context()
	in, errs := sentences(ctx, cmd.InOrStdin(), args)
	results := tokenize.Collect(tk.Stream(ctx, in, cfg.Workers))
	if err := <-errs; err != nil {
		return err
	}

	opts := annotateOptions(cfg.Render)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			tracer().Errorf("sentence %d: %v", r.Sentence.Seq, r.Err)
			continue
		}
		a := annotate.Build(r.Sentence.Text, r.Tokens, opts)
		a.SentenceID = r.Sentence.ID
		if cfg.LogDir != "" {
			if err := logger.LogJSON(cfg.LogDir, r.Sentence.ID, a); err != nil {
				tracer().Errorf("dump %s: %v", r.Sentence.ID, err)
			}
		}
		if err := emit(cmd, enc, a); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sentences could not be annotated", failed, len(results))
	}
	return nil
}

func emit(cmd *cobra.Command, enc *json.Encoder, a annotate.Annotation) error {
	out := cmd.OutOrStdout()
	switch annotateField {
	case "":
		return enc.Encode(a)
	case "plain":
		_, err := fmt.Fprintln(out, a.Plain)
		return err
	case "pinyin":
		_, err := fmt.Fprintln(out, a.Pinyin)
		return err
	case "numerals":
		_, err := fmt.Fprintln(out, a.Numerals)
		return err
	case "markup":
		_, err := fmt.Fprintln(out, a.Markup)
		return err
	default:
		return fmt.Errorf("unknown field %q", annotateField)
	}
}
