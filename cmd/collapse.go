package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zhongwenanki/render"
)

var collapseCmd = &cobra.Command{
	Use:   "collapse [text...]",
	Short: "Normalize spacing of rendered pinyin",
	Long: `Collapse runs of two or more spaces into one and drop lone spaces.
Text without any double space is printed unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ls, err := lines(cmd.Context(), cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		for _, l := range ls {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), render.CollapseSeparators(l)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collapseCmd)
}
