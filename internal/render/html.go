package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/dgallion1/codeformat/internal/heading"
	"github.com/dgallion1/codeformat/internal/markers"
	"github.com/dgallion1/codeformat/internal/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Style is the inline style given to a paragraph at level. Margin is used
// rather than padding because wrapped lines do not respect padding.
func Style(level int, opts Options) string {
	opts = opts.withDefaults()
	return fmt.Sprintf("margin: 0 0 0 %dpx; padding: 0 0 0 %dpx; display: block", level*opts.Unit, opts.Padding)
}

type htmlFormat struct{}

func (htmlFormat) Name() string        { return "html" }
func (htmlFormat) ContentType() string { return "text/html; charset=utf-8" }

func (htmlFormat) Render(w io.Writer, doc *doctree.Document, opts Options) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: doc.Title})
	head.AppendChild(title)
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	for _, p := range doc.Paragraphs {
		el := element(atom.P)
		el.Attr = []html.Attribute{
			{Key: "style", Val: Style(p.Level, opts)},
			{Key: "data-level", Val: fmt.Sprint(p.Level)},
		}
		for i, line := range strings.Split(p.Text, "\n") {
			if i > 0 {
				el.AppendChild(element(atom.Br))
			}
			el.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		}
		body.AppendChild(el)
	}
	htmlEl.AppendChild(body)
	root.AppendChild(htmlEl)

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// Restyle rewrites an HTML page in place: every statute paragraph the HTML
// parser would select gets an indentation style for its level. When resolve
// is false the paragraphs are styled at level 0.
func Restyle(w io.Writer, r io.Reader, opts Options, resolve bool) error {
	root, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	nodes := parser.ContentParagraphs(root)
	res := heading.NewResolver()
	for _, n := range nodes {
		level := 0
		if resolve {
			level = res.Paragraph(markers.Leading(strings.TrimSpace(parser.TextContent(n))))
		}
		setAttr(n, "style", Style(level, opts))
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
