// Package render turns annotated documents into indented output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/codeformat/internal/doctree"
)

// Options controls indentation.
type Options struct {
	Unit       int // left margin per level, in px, for HTML output
	Padding    int // left padding of every paragraph, in px
	TextIndent int // spaces per level for text and terminal output
}

// DefaultOptions is 25px per level with 5px padding, and 4 spaces per level
// for text.
func DefaultOptions() Options {
	return Options{Unit: 25, Padding: 5, TextIndent: 4}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Unit <= 0 {
		o.Unit = d.Unit
	}
	if o.Padding < 0 {
		o.Padding = d.Padding
	}
	if o.TextIndent <= 0 {
		o.TextIndent = d.TextIndent
	}
	return o
}

// Margin returns the left margin for a paragraph at level.
func (o Options) Margin(level int) int {
	return level * o.withDefaults().Unit
}

// Format writes a document in one output format.
type Format interface {
	Name() string
	ContentType() string
	Render(w io.Writer, doc *doctree.Document, opts Options) error
}

var formats = map[string]Format{}

func register(f Format) {
	formats[f.Name()] = f
}

func init() {
	register(htmlFormat{})
	register(textFormat{})
	register(termFormat{})
	register(jsonFormat{})
}

// ForName returns the format registered under name.
func ForName(name string) (Format, error) {
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return f, nil
}

// RestyleName is the name of the in-place HTML rewrite. It is not a Format
// because it works on the source page rather than on parsed paragraphs.
const RestyleName = "restyle"

// Names lists every output name, including RestyleName.
func Names() []string {
	return []string{"html", RestyleName, "text", "term", "json"}
}
