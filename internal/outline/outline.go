// Package outline annotates parsed documents with heading markers and levels.
package outline

import (
	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/dgallion1/codeformat/internal/heading"
	"github.com/dgallion1/codeformat/internal/markers"
)

// MaxLevel is the deepest outline level.
const MaxLevel = 5

// Annotate extracts the leading markers of every paragraph and assigns levels.
// Each call resolves the document from a fresh state.
func Annotate(doc *doctree.Document) {
	for _, p := range doc.Paragraphs {
		p.Markers = markers.Leading(p.Text)
	}
	for i, l := range heading.Resolve(doc.Markers()) {
		doc.Paragraphs[i].Level = l
	}
	doc.Resolved = true
}

// Clear extracts markers but leaves every paragraph at level 0. It is used
// when formatting is switched off.
func Clear(doc *doctree.Document) {
	for _, p := range doc.Paragraphs {
		p.Markers = markers.Leading(p.Text)
		p.Level = 0
	}
	doc.Resolved = false
}

// Stats summarises the levels of an annotated document.
type Stats struct {
	Paragraphs int              `json:"paragraphs"`
	Marked     int              `json:"marked"`
	ByLevel    [MaxLevel + 1]int `json:"by_level"`
	MaxDepth   int              `json:"max_depth"`
}

// Summarize counts paragraphs per level.
func Summarize(doc *doctree.Document) Stats {
	var s Stats
	s.Paragraphs = len(doc.Paragraphs)
	for _, p := range doc.Paragraphs {
		if len(p.Markers) > 0 {
			s.Marked++
		}
		if p.Level >= 0 && p.Level <= MaxLevel {
			s.ByLevel[p.Level]++
		}
		s.MaxDepth = max(s.MaxDepth, p.Level)
	}
	return s
}
