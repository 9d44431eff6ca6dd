package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "codeformat",
		Short: "Indent statute text by its outline markers",
		Long: `codeformat reads statute text whose paragraphs open with markers such
as (a), (1), (A), (i) and (I), works out each paragraph's depth in the
outline, and writes the document back with matching indentation.

Supported inputs: TXT, MD, HTML, PDF, DOCX, EPUB
Outputs: html, restyle (HTML input only), text, term, json`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(levelsCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(markersCmd())
	rootCmd.AddCommand(enableCmd())
	rootCmd.AddCommand(disableCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
