package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/dgallion1/codeformat/internal/markers"
)

// TextParser handles plain text files. Blank lines end a paragraph, and so
// does a line that opens with a marker such as "(b)".
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	paragraphs, err := splitParagraphs(r)
	if err != nil {
		return nil, err
	}

	doc := &doctree.Document{
		Title:  titleFrom(filename),
		Source: filename,
	}
	for _, para := range paragraphs {
		doc.Add(para, 0)
	}
	return doc, nil
}

// splitParagraphs reads r line by line. Lines longer than 1MB are an error.
func splitParagraphs(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b paragraphBuilder
	for scanner.Scan() {
		b.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.done(), nil
}

// splitText applies the same rules as splitParagraphs to text already in
// memory, with no limit on line length.
func splitText(text string) []string {
	var b paragraphBuilder
	for _, line := range strings.Split(text, "\n") {
		b.line(line)
	}
	return b.done()
}

// paragraphBuilder groups lines into paragraphs. A blank line ends the
// current paragraph, and a line opening with a marker starts a new one.
type paragraphBuilder struct {
	paragraphs []string
	current    strings.Builder
}

func (b *paragraphBuilder) line(line string) {
	line = strings.TrimRight(line, " \t\r")
	if strings.TrimSpace(line) == "" {
		b.flush()
		return
	}
	if markers.StartsWithMarker(line) {
		b.flush()
	}
	if b.current.Len() > 0 {
		b.current.WriteString("\n")
	}
	b.current.WriteString(line)
}

func (b *paragraphBuilder) flush() {
	if b.current.Len() > 0 {
		b.paragraphs = append(b.paragraphs, b.current.String())
		b.current.Reset()
	}
}

func (b *paragraphBuilder) done() []string {
	b.flush()
	return b.paragraphs
}
