package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/codeformat/internal/doctree"
	"golang.org/x/net/html"
)

// Element ids of the statute text on leginfo.legislature.ca.gov pages.
const (
	// ArticleContentID wraps an article (a run of code sections).
	ArticleContentID = "manylawsections"
	// SectionContentID wraps a single code section.
	SectionContentID = "single_law_section"
)

// HTMLParser handles HTML files. Every <p> inside the statute content area
// is one paragraph.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &doctree.Document{
		Title:  titleFrom(filename),
		Source: filename,
	}
	if title := findTitle(root); title != "" {
		doc.Title = title
	}

	for _, n := range ContentParagraphs(root) {
		doc.Add(strings.TrimSpace(TextContent(n)), 0)
	}
	return doc, nil
}

// ContentRoot returns the element holding the statute text: the article
// container, else the single-section container, else <body>, else the
// document itself.
func ContentRoot(root *html.Node) *html.Node {
	for _, id := range []string{ArticleContentID, SectionContentID} {
		if n := findByID(root, id); n != nil {
			return n
		}
	}
	if body := findElement(root, "body"); body != nil {
		return body
	}
	return root
}

// ContentParagraphs returns the <p> elements under the content root in
// document order. Empty <p> tags, which separate sections on leginfo pages,
// are skipped.
func ContentParagraphs(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "p":
				if TextContent(n) != "" {
					out = append(out, n)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(ContentRoot(root))
	return out
}

// TextContent concatenates the text nodes under n.
func TextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findTitle(n *html.Node) string {
	if t := findElement(n, "title"); t != nil {
		return strings.TrimSpace(TextContent(t))
	}
	return ""
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
