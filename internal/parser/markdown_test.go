package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_BlocksBecomeParagraphs(t *testing.T) {
	input := `# Section 1001

(a) The department shall

(1) adopt regulations;

(2) publish *guidance*.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", doc.Title)
	}

	want := []string{
		"Section 1001",
		"(a) The department shall",
		"(1) adopt regulations;",
		"(2) publish guidance.",
	}
	if len(doc.Paragraphs) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %+v", len(want), len(doc.Paragraphs), doc.Paragraphs)
	}
	for i, w := range want {
		if doc.Paragraphs[i].Text != w {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, w, doc.Paragraphs[i].Text)
		}
	}
}

func TestMarkdownParser_SoftWrappedMarkers(t *testing.T) {
	input := "(a) First\n(b) Second\ncontinued\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "wrap.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[1].Text != "(b) Second\ncontinued" {
		t.Errorf("unexpected second paragraph %q", doc.Paragraphs[1].Text)
	}
}

func TestMarkdownParser_ListItems(t *testing.T) {
	input := "- (a) one\n- (b) two\n- (c) three\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[2].Text != "(c) three" {
		t.Errorf("unexpected third paragraph %q", doc.Paragraphs[2].Text)
	}
}

func TestMarkdownParser_CodeBlock(t *testing.T) {
	input := "Intro.\n\n```\nGET /api/users\n```\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	if !strings.Contains(doc.Paragraphs[1].Text, "GET /api/users") {
		t.Errorf("expected code block content, got %q", doc.Paragraphs[1].Text)
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 0 {
		t.Errorf("expected 0 paragraphs for empty input, got %d", len(doc.Paragraphs))
	}
}

func TestMarkdownParser_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
		{"dir/plain.md", "plain"},
	}
	p := &MarkdownParser{}
	for _, tt := range tests {
		doc, err := p.Parse(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Title != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Title)
		}
	}
}

func TestMarkdownParser_LongLineKept(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	input := "(a) short\n\n(b) " + long + "\n\n(c) after\n"

	doc, err := (&MarkdownParser{}).Parse(strings.NewReader(input), "long.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(doc.Paragraphs))
	}
	if got := doc.Paragraphs[1].Text; got != "(b) "+long {
		t.Errorf("expected long paragraph intact, got %d bytes", len(got))
	}
	if doc.Paragraphs[2].Text != "(c) after" {
		t.Errorf("unexpected last paragraph %q", doc.Paragraphs[2].Text)
	}
}

func TestSplitText_MatchesSplitParagraphs(t *testing.T) {
	input := "(a) first\ncontinued  \n\n(b) second\n(1) nested\n"
	want, err := splitParagraphs(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := splitText(input)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
}
