package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"luapat"
)

var (
	gsubCount int
	gsubRules string
	gsubWrite bool
)

var gsubCmd = &cobra.Command{
	Use:   "gsub PATTERN REPL [FILE...] | gsub --rules RULES [FILE...]",
	Short: "Replace matches",
	Long: `Replace matches of PATTERN with REPL in the whole text of each file (or stdin)
and print the result.

In REPL, %0 is the whole match, %1-%9 a capture (%1 is the whole match when
PATTERN has no captures) and %% a literal percent sign.

With --rules, the substitutions listed in a YAML file are applied in order:

  rules:
    - name: trim
      pattern: "^%s+"
      replace: ""
    - name: swap
      pattern: "(%w+)=(%w+)"
      replace: "%2=%1"
      count: 1`,
	Args: func(cmd *cobra.Command, args []string) error {
		if gsubRules != "" {
			return nil
		}
		return cobra.MinimumNArgs(2)(cmd, args)
	},
	RunE: runGsub,
}

func init() {
	gsubCmd.Flags().IntVar(&gsubCount, "count", -1, "Maximum replacements per input (-1 for all)")
	gsubCmd.Flags().StringVar(&gsubRules, "rules", "", "YAML file of substitutions to apply in order")
	gsubCmd.Flags().BoolVarP(&gsubWrite, "write", "w", false, "Write the result back to each file")
}

func runGsub(cmd *cobra.Command, args []string) error {
	var rules []substRule
	var paths []string

	if gsubRules != "" {
		var err error
		if rules, err = loadRulesFile(gsubRules); err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		paths = args
		logf("loaded %d rules from %s", len(rules), gsubRules)
	} else {
		count := gsubCount
		rules = []substRule{{Name: "command line", Pattern: args[0], Replace: args[1], Count: &count}}
		paths = args[2:]
	}

	if gsubWrite && len(paths) == 0 {
		return errors.New("--write needs at least one file")
	}

	return forEachInput(cmd, paths, func(in input, out *bytes.Buffer) error {
		text, err := applyRules(in.data, rules)
		if err != nil {
			return err
		}
		if gsubWrite {
			if err := os.WriteFile(in.name, text, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", in.name, err)
			}
			logf("rewrote %s", in.name)
			return nil
		}
		out.Write(text)
		return nil
	})
}

// applyRules runs each substitution over the output of the previous one.
func applyRules(text []byte, rules []substRule) ([]byte, error) {
	for _, r := range rules {
		next, err := luapat.Gsub(text, []byte(r.Pattern), []byte(r.Replace), r.limit())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name, err)
		}
		if !bytes.Equal(next, text) {
			logf("%s: changed", r.Name)
		}
		text = next
	}
	return text, nil
}
