package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/codeformat/internal/config"
	"github.com/dgallion1/codeformat/internal/pipeline"
	"github.com/dgallion1/codeformat/internal/render"
	"github.com/dgallion1/codeformat/internal/settings"
	"github.com/spf13/cobra"
)

func formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Indent a document by its outline markers",
		Long: `Parse a document, resolve the outline level of every paragraph and write
it back indented.

Example:
  codeformat format 65589.5.txt
  codeformat format page.html --to restyle --out page.indented.html
  codeformat format statute.pdf --to json --indent 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			to, _ := cmd.Flags().GetString("to")
			outPath, _ := cmd.Flags().GetString("out")
			title, _ := cmd.Flags().GetString("title")
			noPdftotext, _ := cmd.Flags().GetBool("no-pdftotext")
			if cmd.Flags().Changed("indent") {
				cfg.IndentUnit, _ = cmd.Flags().GetInt("indent")
			}
			if cmd.Flags().Changed("text-indent") {
				cfg.TextIndent, _ = cmd.Flags().GetInt("text-indent")
			}
			if noPdftotext {
				cfg.PDFFallbackPdftotext = false
			}
			if to == "" {
				to = cfg.DefaultOutputFormat
			}
			to = strings.ToLower(to)
			cfg.DefaultOutputFormat = to
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			log := newLogger()
			worker := pipeline.NewWorker(cfg, cliEnabled(cfg), log)
			doc, err := worker.Parse(data, args[0], title)
			if err != nil {
				return err
			}
			log.Debug("parsed document", "file", args[0], "paragraphs", len(doc.Paragraphs))

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			if _, err := worker.Render(out, doc, to, data); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d paragraphs)\n", outPath, len(doc.Paragraphs))
			}
			return nil
		},
	}

	cmd.Flags().String("to", "", "output format: "+strings.Join(render.Names(), ", ")+" (default $DEFAULT_OUTPUT_FORMAT or html)")
	cmd.Flags().String("out", "", "write output to this file instead of stdout")
	cmd.Flags().Int("indent", 25, "pixels per level for HTML output")
	cmd.Flags().Int("text-indent", 4, "spaces per level for text and terminal output")
	cmd.Flags().String("title", "", "override the document title")
	cmd.Flags().Bool("no-pdftotext", false, "do not fall back to pdftotext for PDFs")

	return cmd
}

// cliEnabled combines CODEFORMAT_ENABLED with the persisted toggle. A
// missing state directory leaves formatting on.
func cliEnabled(cfg config.Config) func() bool {
	store, err := settings.Open()
	if err != nil {
		return func() bool { return cfg.Enabled }
	}
	return func() bool { return cfg.Enabled && store.Active() }
}
