package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zhongwenanki/synonym"
)

var synonymsFallback bool

var synonymsCmd = &cobra.Command{
	Use:   "synonyms [list...]",
	Short: "Tone-color the characters of decorated synonym lists",
	Long: `Recolor synonym lists of the form
  矢量 (shǐ liàng) - vector<br>向量 (xiàng liàng) - vector
given as arguments or one per line of standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ls, err := lines(cmd.Context(), cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		a := synonym.Annotator{Options: markupOptions(cfg.Render)}
		if synonymsFallback {
			if a.Oracle, err = newOracle(cfg); err != nil {
				return err
			}
		}
		for _, l := range ls {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.Recolor(l)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	synonymsCmd.Flags().BoolVar(&synonymsFallback, "fallback", false,
		"romanize entries whose written pinyin does not cover their characters")
	rootCmd.AddCommand(synonymsCmd)
}
