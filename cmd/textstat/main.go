// Package main provides the CLI entrypoint for textstat.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/textstat/internal/clierr"
	"github.com/verte-zerg/textstat/internal/config"
	"github.com/verte-zerg/textstat/internal/stats"
	"github.com/verte-zerg/textstat/internal/wordlist"
)

const programName = "textstat"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(append([]string{}, args...))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		logErrf(stderr, "Error: %v\n", err)
		return clierr.ExitCode(err)
	}
	return 0
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   programName + " <file_path> [--min-length N] [--starts-with C] [--config PATH]",
		Short: "Word statistics for a text file",
		// Flags are parsed by config.ParseArgs: order-insensitive, unknown
		// tokens skipped, each flag consuming the following argument.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runAnalyzeCmd,
	}
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	return run(cmd.OutOrStdout(), append([]string{programName}, args...))
}

func run(w io.Writer, argv []string) error {
	cfg, err := config.Resolve(argv)
	if err != nil {
		return err
	}

	text, err := wordlist.LoadText(cfg.FilePath)
	if err != nil {
		return err
	}

	freq, lengthSum := stats.Aggregate(wordlist.Tokens(text, wordlist.FilterForConfig(cfg)))
	summary := stats.Summarize(freq, lengthSum)

	if err := stats.RenderReport(w, cfg, summary); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logErrf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
