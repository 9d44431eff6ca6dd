package doctree

// Document is a parsed source document reduced to its paragraphs in reading order.
type Document struct {
	Title      string       // Document title (from metadata or filename)
	Source     string       // Original filename
	Paragraphs []*Paragraph // Rendered blocks, in order
	Resolved   bool         // Levels were assigned; false when formatting was off
}

// Paragraph is one renderable block of text.
type Paragraph struct {
	Text    string   // Paragraph text as extracted
	Page    int      // Source page (0 if N/A)
	Markers []string // Leading heading tokens, parentheses stripped
	Level   int      // Outline depth, 0 when the paragraph has no markers
}

// Add appends a paragraph with the given text and page.
func (d *Document) Add(text string, page int) {
	d.Paragraphs = append(d.Paragraphs, &Paragraph{Text: text, Page: page})
}

// Markers returns each paragraph's markers, in order.
func (d *Document) Markers() [][]string {
	out := make([][]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		out[i] = p.Markers
	}
	return out
}

// Levels returns each paragraph's level, in order.
func (d *Document) Levels() []int {
	out := make([]int, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		out[i] = p.Level
	}
	return out
}
