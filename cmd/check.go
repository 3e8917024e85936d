package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"zhongwenanki/render"
)

var checkCmd = &cobra.Command{
	Use:   "check [sentence...]",
	Short: "Verify that annotation reproduces each input sentence",
	Long: `Tokenize each sentence and compare the plain text of the tokens with the
input. Differences are printed as an inline diff. Exits with an error when
any sentence fails to round-trip or to align.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ls, err := lines(cmd.Context(), cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		tk, err := newTokenizer(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		dmp := diffmatchpatch.New()
		bad := 0
		for i, l := range ls {
			tokens, err := tk.Tokenize(l)
			if err != nil {
				bad++
				fmt.Fprintf(out, "%d: %v\n", i+1, err)
				continue
			}
			if tokens == nil {
				// whitespace-only input has no tokens
				continue
			}
			got := render.PlainText(tokens)
			if got == l {
				tracer().Debugf("%d: ok %s", i+1, render.Debug(tokens))
				continue
			}
			bad++
			diffs := dmp.DiffMain(l, got, false)
			fmt.Fprintf(out, "%d: %s\n", i+1, dmp.DiffPrettyText(diffs))
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d sentences failed", bad, len(ls))
		}
		fmt.Fprintf(out, "%d sentences ok\n", len(ls))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
