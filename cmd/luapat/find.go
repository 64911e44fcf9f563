package main

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"luapat"
)

var (
	findCaptures   bool
	findLineNumber bool
)

var findCmd = &cobra.Command{
	Use:   "find PATTERN [FILE...]",
	Short: "Print lines containing a match",
	Long: `Search every line of the given files (or stdin) for the first match of
PATTERN and print the line with the match highlighted.

With --captures only the captures of each match are printed, tab separated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findCaptures, "captures", false, "Print captures instead of the line")
	findCmd.Flags().BoolVarP(&findLineNumber, "line-number", "n", false, "Prefix each line with its line number")
}

func runFind(cmd *cobra.Command, args []string) error {
	pattern := []byte(args[0])
	paths := args[1:]
	s := resolveStyles()

	var total atomic.Int64
	err := forEachInput(cmd, paths, func(in input, out *bytes.Buffer) error {
		for i, line := range in.lines() {
			r, err := luapat.Find(line, pattern)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			if !r.Found() {
				continue
			}
			total.Add(1)

			lineNo := 0
			if findLineNumber {
				lineNo = i + 1
			}
			out.WriteString(s.prefix(in.name, len(paths) > 1, lineNo))
			if findCaptures {
				out.WriteString(s.captures(r))
			} else {
				out.WriteString(s.highlight(line, r))
			}
			out.WriteByte('\n')
		}
		return nil
	})
	if err != nil {
		return err
	}

	logf("%d matching lines", total.Load())
	if total.Load() == 0 {
		warnf(cmd, "no match for %q", args[0])
	}
	return nil
}
