package cmd

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"zhongwenanki/annotate"
	"zhongwenanki/render"
)

var demoSentences = []string{
	"你好世界",
	"你好，世界！",
	"我喜欢Python和C++。",
	"这是一个测试。",
	"银行的行长姓行",
	"你好   世界",
	"  leading and trailing spaces  ",
	"你好，世界！123 numbers",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Annotate a fixed set of sample sentences",
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newTokenizer(cfg)
		if err != nil {
			return err
		}
		a := &annotate.Annotator{Tokenizer: tk, Options: annotateOptions(cfg.Render)}
		rows := make([]demoRow, 0, len(demoSentences))
		for _, s := range demoSentences {
			ann, err := a.Annotate(s)
			if err != nil {
				return fmt.Errorf("%q: %w", s, err)
			}
			rows = append(rows, demoRow{ann: ann, words: render.Debug(ann.Tokens)})
		}
		printDemo(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

type demoRow struct {
	ann   annotate.Annotation
	words string
}

// printDemo prints one summary table, padded by display width, followed by
// the token breakdown and markup of every sentence.
func printDemo(w io.Writer, rows []demoRow) {
	width := runewidth.StringWidth("Sentence")
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(quote(r.ann.Text)))
	}
	fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight("Sentence", width), "Pinyin")
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(quote(r.ann.Text), width), r.ann.Pinyin)
	}
	for _, r := range rows {
		fmt.Fprintf(w, "\n%s\n", quote(r.ann.Text))
		fmt.Fprintf(w, "  words   %s\n", r.words)
		fmt.Fprintf(w, "  plain   %s\n", r.ann.Plain)
		fmt.Fprintf(w, "  html    %s\n", r.ann.Markup)
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}
