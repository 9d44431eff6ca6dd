package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/codeformat/internal/doctree"
)

type textFormat struct{}

func (textFormat) Name() string        { return "text" }
func (textFormat) ContentType() string { return "text/plain; charset=utf-8" }

// Render writes each paragraph indented by TextIndent spaces per level,
// with a blank line between paragraphs.
func (textFormat) Render(w io.Writer, doc *doctree.Document, opts Options) error {
	opts = opts.withDefaults()
	bw := bufio.NewWriter(w)
	for i, p := range doc.Paragraphs {
		if i > 0 {
			bw.WriteString("\n")
		}
		indent := strings.Repeat(" ", p.Level*opts.TextIndent)
		for _, line := range strings.Split(p.Text, "\n") {
			bw.WriteString(indent)
			bw.WriteString(line)
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}
