package outline

import (
	"slices"
	"testing"

	"github.com/dgallion1/codeformat/internal/doctree"
)

func statute() *doctree.Document {
	doc := &doctree.Document{Title: "65589.5"}
	for _, text := range []string{
		"(a) The Legislature finds and declares all of the following:",
		"(1) The lack of housing is a critical problem.",
		"(A) Housing costs have risen.",
		"(i) In urban areas.",
		"(ii) In rural areas.",
		"Unmarked continuation text.",
		"(b) It is the policy of the state that",
	} {
		doc.Add(text, 0)
	}
	return doc
}

func TestAnnotate(t *testing.T) {
	doc := statute()
	Annotate(doc)

	want := []int{1, 2, 3, 4, 4, 0, 1}
	if got := doc.Levels(); !slices.Equal(got, want) {
		t.Fatalf("expected levels %v, got %v", want, got)
	}
	if got := doc.Paragraphs[3].Markers; !slices.Equal(got, []string{"i"}) {
		t.Errorf("expected markers [i], got %q", got)
	}
	if doc.Paragraphs[5].Markers != nil {
		t.Errorf("expected no markers on unmarked paragraph, got %q", doc.Paragraphs[5].Markers)
	}
}

func TestAnnotate_Idempotent(t *testing.T) {
	doc := statute()
	Annotate(doc)
	first := doc.Levels()
	Annotate(doc)
	if got := doc.Levels(); !slices.Equal(got, first) {
		t.Errorf("expected %v on second pass, got %v", first, got)
	}
}

func TestClear(t *testing.T) {
	doc := statute()
	Annotate(doc)
	if !doc.Resolved {
		t.Error("expected Annotate to mark the document resolved")
	}
	Clear(doc)
	if doc.Resolved {
		t.Error("expected Clear to unmark the document")
	}
	for i, l := range doc.Levels() {
		if l != 0 {
			t.Errorf("paragraph %d: expected level 0, got %d", i, l)
		}
	}
	if len(doc.Paragraphs[0].Markers) != 1 {
		t.Errorf("expected markers to survive Clear, got %q", doc.Paragraphs[0].Markers)
	}
}

func TestSummarize(t *testing.T) {
	doc := statute()
	Annotate(doc)
	s := Summarize(doc)
	if s.Paragraphs != 7 {
		t.Errorf("expected 7 paragraphs, got %d", s.Paragraphs)
	}
	if s.Marked != 6 {
		t.Errorf("expected 6 marked paragraphs, got %d", s.Marked)
	}
	if s.ByLevel != [MaxLevel + 1]int{1, 2, 1, 1, 2, 0} {
		t.Errorf("unexpected level counts %v", s.ByLevel)
	}
	if s.MaxDepth != 4 {
		t.Errorf("expected max depth 4, got %d", s.MaxDepth)
	}
}
