package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dgallion1/codeformat/internal/config"
	"github.com/dgallion1/codeformat/internal/outline"
	"github.com/dgallion1/codeformat/internal/pipeline"
	"github.com/spf13/cobra"
)

func markersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markers <file>",
		Short: "Show extracted markers and resolved levels",
		Long: `Print one line per paragraph with its resolved level, the markers found
at its start and the beginning of its text.

Example:
  codeformat markers 65589.5.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			showStats, _ := cmd.Flags().GetBool("stats")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			// Always resolve here; the toggle only affects formatted output.
			cfg := config.Load()
			worker := pipeline.NewWorker(cfg, func() bool { return true }, newLogger())
			doc, err := worker.Parse(data, args[0], "")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, p := range doc.Paragraphs {
				fmt.Fprintf(out, "%4d  L%d  %-16s %s\n", i+1, p.Level, strings.Join(p.Markers, " "), preview(p.Text, width))
			}

			if showStats {
				st := outline.Summarize(doc)
				fmt.Fprintf(out, "\nParagraphs: %d  Marked: %d  Max depth: %d\n", st.Paragraphs, st.Marked, st.MaxDepth)
				for level := 1; level <= outline.MaxLevel; level++ {
					fmt.Fprintf(out, "  Level %d: %d\n", level, st.ByLevel[level])
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("width", 60, "characters of paragraph text to show")
	cmd.Flags().Bool("stats", false, "print per-level totals")

	return cmd
}

func preview(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if width <= 0 || len(r) <= width {
		return text
	}
	return string(r[:width]) + "..."
}
