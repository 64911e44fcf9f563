package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"luapat"
)

var explainCmd = &cobra.Command{
	Use:   "explain PATTERN",
	Short: "List the items of a pattern",
	Long:  "Split PATTERN into its items and print one per line with its offset, kind and repetition suffix",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	items, anchored, err := luapat.Explain(args[0])
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", args[0], err)
	}

	s := resolveStyles()
	out := cmd.OutOrStdout()
	if anchored {
		fmt.Fprintln(out, s.sep.Sprint("anchored at start"))
	}
	for _, it := range items {
		fmt.Fprintf(out, "%s\t%s\t%s", s.lineNo.Sprint(it.Pos), it.Kind, s.match.Sprint(it.Text))
		if it.Suffix != 0 {
			fmt.Fprintf(out, "\t%c", it.Suffix)
		}
		fmt.Fprintln(out)
	}
	logf("%d items", len(items))
	return nil
}
