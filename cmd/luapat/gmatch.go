package main

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"luapat"
)

var (
	gmatchCaptures bool
	gmatchIndex    bool
)

var gmatchCmd = &cobra.Command{
	Use:   "gmatch PATTERN [FILE...]",
	Short: "Print every match",
	Long: `Print every non-overlapping match of PATTERN in each line of the given files
(or stdin), one per output line.

A leading '^' does not anchor: every match in the line is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGmatch,
}

func init() {
	gmatchCmd.Flags().BoolVar(&gmatchCaptures, "captures", false, "Print captures instead of the match")
	gmatchCmd.Flags().BoolVar(&gmatchIndex, "index", false, "Prefix each match with its line and 1-based column")
}

func runGmatch(cmd *cobra.Command, args []string) error {
	pattern := []byte(args[0])
	paths := args[1:]
	s := resolveStyles()

	var total atomic.Int64
	err := forEachInput(cmd, paths, func(in input, out *bytes.Buffer) error {
		for i, line := range in.lines() {
			it := luapat.Gmatch(line, pattern)
			for r := range it.All() {
				total.Add(1)
				out.WriteString(s.prefix(in.name, len(paths) > 1, 0))
				if gmatchIndex {
					out.WriteString(s.lineNo.Sprintf("%d:%d", i+1, r.Start()+1))
					out.WriteString(s.sep.Sprint(":"))
				}
				if gmatchCaptures {
					out.WriteString(s.captures(r))
				} else {
					out.WriteString(s.match.Sprint(string(r.Text())))
				}
				out.WriteByte('\n')
			}
			if err := it.Err(); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logf("%d matches", total.Load())
	return nil
}
