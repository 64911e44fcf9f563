package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	quiet     bool
	colorMode string
)

// logger carries progress lines for --verbose. It is pointed at the
// command's stderr before any subcommand runs.
var logger = log.New(os.Stderr, "luapat: ", 0)

var rootCmd = &cobra.Command{
	Use:   "luapat",
	Short: "luapat - Lua pattern matching for the command line",
	Long: `luapat searches and rewrites text with Lua-style patterns.

Patterns use Lua syntax: %a %d %s ... classes, [sets], the * + - ? suffixes,
%bxy balanced runs, %f[set] frontiers, () captures and %1-%9 back references.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(gmatchCmd)
	rootCmd.AddCommand(gsubCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logf writes a progress line when --verbose is set.
func logf(format string, args ...any) {
	if verbose && !quiet {
		logger.Printf(format, args...)
	}
}

// warnf writes a notice to stderr unless --quiet is set.
func warnf(cmd *cobra.Command, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}
