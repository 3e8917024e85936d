package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zhongwenanki/finder"
	"zhongwenanki/tokenize"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word...]",
	Short: "Look up meaning, example sentence and synonyms of words",
	Long: `Build one card per word from the glossary file set with --glossary or the
glossary config key. Cards are written as JSON, one per line. Without a
glossary every card is empty.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := lines(cmd.Context(), cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		tk, err := newTokenizer(cfg)
		if err != nil {
			return err
		}
		f, err := newFinders(tk)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		for _, w := range ws {
			card, err := f.Find(cmd.Context(), w)
			if err != nil {
				return fmt.Errorf("%s: %w", w, err)
			}
			if err := enc.Encode(card); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func newFinders(tk *tokenize.Tokenizer) (finder.Finders, error) {
	if cfg.Glossary == "" {
		e := finder.Empty{}
		return finder.Finders{Meaning: e, Sentence: e, Synonyms: e}, nil
	}
	file, err := os.Open(cfg.Glossary)
	if err != nil {
		return finder.Finders{}, fmt.Errorf("opening glossary: %w", err)
	}
	defer file.Close()
	g, err := finder.LoadGlossary(file, tk, markupOptions(cfg.Render)...)
	if err != nil {
		return finder.Finders{}, fmt.Errorf("%s: %w", cfg.Glossary, err)
	}
	tracer().Infof("glossary %s: %d words", cfg.Glossary, g.Len())
	return finder.Finders{Meaning: g, Sentence: g, Synonyms: g}, nil
}
