package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/dgallion1/codeformat/internal/markers"
)

var (
	levelColors = []lipgloss.Color{
		lipgloss.Color("#888888"),
		lipgloss.Color("#FFAA00"),
		lipgloss.Color("#00AAFF"),
		lipgloss.Color("#00FF00"),
		lipgloss.Color("#FF66CC"),
		lipgloss.Color("#FF0000"),
	}

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))
)

type termFormat struct{}

func (termFormat) Name() string        { return "term" }
func (termFormat) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes paragraphs for a terminal, indented per level with the
// leading markers coloured by depth.
func (termFormat) Render(w io.Writer, doc *doctree.Document, opts Options) error {
	opts = opts.withDefaults()
	var out strings.Builder
	for _, p := range doc.Paragraphs {
		block := lipgloss.NewStyle().PaddingLeft(p.Level * opts.TextIndent)
		out.WriteString(block.Render(styledParagraph(p)))
		out.WriteString("\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func styledParagraph(p *doctree.Paragraph) string {
	if len(p.Markers) == 0 {
		return bodyStyle.Render(p.Text)
	}
	color := levelColors[min(max(p.Level, 0), len(levelColors)-1)]
	markerStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	// Split off the leading markers as they appear in the text.
	text := strings.TrimLeft(markers.Normalize(p.Text), " ")
	var head []string
	for range p.Markers {
		word, rest, _ := strings.Cut(text, " ")
		head = append(head, word)
		text = rest
	}
	return markerStyle.Render(strings.Join(head, " ")) + " " + bodyStyle.Render(text)
}
