package render

import (
	"encoding/json"
	"io"

	"github.com/dgallion1/codeformat/internal/doctree"
)

// JSONParagraph is one paragraph in JSON output.
type JSONParagraph struct {
	Text    string   `json:"text"`
	Page    int      `json:"page,omitempty"`
	Markers []string `json:"markers"`
	Level   int      `json:"level"`
	Indent  int      `json:"indent"`
}

// JSONDocument is the JSON output for a document.
type JSONDocument struct {
	Title      string          `json:"title"`
	Paragraphs []JSONParagraph `json:"paragraphs"`
}

type jsonFormat struct{}

func (jsonFormat) Name() string        { return "json" }
func (jsonFormat) ContentType() string { return "application/json" }

func (jsonFormat) Render(w io.Writer, doc *doctree.Document, opts Options) error {
	out := JSONDocument{
		Title:      doc.Title,
		Paragraphs: make([]JSONParagraph, 0, len(doc.Paragraphs)),
	}
	for _, p := range doc.Paragraphs {
		m := p.Markers
		if m == nil {
			m = []string{}
		}
		out.Paragraphs = append(out.Paragraphs, JSONParagraph{
			Text:    p.Text,
			Page:    p.Page,
			Markers: m,
			Level:   p.Level,
			Indent:  opts.Margin(p.Level),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
