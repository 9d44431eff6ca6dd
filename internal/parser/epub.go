package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// EPUBParser handles EPUB files. Spine items are read in order and each is
// split into paragraphs with the same <p> rules as HTMLParser.
type EPUBParser struct{}

func (p *EPUBParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read epub: %w", err)
	}
	if err := checkEPUBContainer(data); err != nil {
		return nil, err
	}
	rc, err := epub.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open epub: %w", err)
	}

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("no rootfiles found in epub")
	}
	book := rc.Rootfiles[0]

	doc := &doctree.Document{
		Title:  titleFrom(filename),
		Source: filename,
	}
	if t := strings.TrimSpace(book.Title); t != "" {
		doc.Title = t
	}

	for i, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		item, err := ref.Item.Open()
		if err != nil {
			return nil, fmt.Errorf("open spine item %d: %w", i, err)
		}
		root, err := html.Parse(item)
		item.Close()
		if err != nil {
			return nil, fmt.Errorf("parse spine item %d: %w", i, err)
		}
		for _, n := range ContentParagraphs(root) {
			doc.Add(strings.TrimSpace(TextContent(n)), 0)
		}
	}

	return doc, nil
}

// checkEPUBContainer rejects archives without META-INF/container.xml, which
// goreader dereferences unchecked.
func checkEPUBContainer(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("open epub: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == "META-INF/container.xml" {
			return nil
		}
	}
	return fmt.Errorf("open epub: missing META-INF/container.xml")
}
