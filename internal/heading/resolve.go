package heading

// State is carried across every paragraph of one document.
type State struct {
	Level int    // deepest level reached by the last marker; 0 before any marker
	Last  string // raw text of the last marker seen
}

// Resolver assigns levels to paragraphs in document order. A Resolver
// belongs to exactly one document; use a new one per document.
type Resolver struct {
	state State
}

// NewResolver returns a resolver positioned before the first paragraph.
func NewResolver() *Resolver {
	return &Resolver{}
}

// State returns a copy of the carried state.
func (r *Resolver) State() State {
	return r.state
}

// Paragraph consumes the markers of one paragraph and returns its level.
//
// The level is that of the paragraph's first marker. Later markers in the
// same paragraph still advance the carried state, so "(a) (1) (A)" reports
// 1 but leaves the document at depth 3, and a following "(i)" reads as a
// roman numeral. A paragraph without markers is level 0 and leaves the
// state alone.
func (r *Resolver) Paragraph(tokens []string) int {
	level, fixed := 0, false
	for _, tok := range tokens {
		l := r.token(tok)
		r.state.Level = l
		r.state.Last = tok
		if !fixed {
			level, fixed = l, true
		}
	}
	return level
}

// token decides the level of a single marker. The order of the cases is
// significant: "i" must be tried as a numeral before it is tried as a letter.
func (r *Resolver) token(tok string) int {
	switch {
	case r.continuesRoman(tok, IsLowerRoman, LowerRoman.Level(), "i"):
		return LowerRoman.Level()
	case r.continuesRoman(tok, IsUpperRoman, UpperRoman.Level(), "I"):
		return UpperRoman.Level()
	case IsLowerLetter(tok):
		return LowerLetter.Level()
	case IsNumber(tok):
		return Number.Level()
	case IsUpperLetter(tok):
		return UpperLetter.Level()
	}
	return r.state.Level
}

// continuesRoman reports whether tok reads as a roman numeral at depth level.
// After a numeral of the same case only its immediate successor qualifies.
// Otherwise a run may start anywhere at or below depth level, or with first
// one level above it.
func (r *Resolver) continuesRoman(tok string, shape func(string) bool, level int, first string) bool {
	if !shape(tok) {
		return false
	}
	if shape(r.state.Last) {
		return r.state.Level >= level && RomanValue(r.state.Last)+1 == RomanValue(tok)
	}
	return r.state.Level >= level || (r.state.Level == level-1 && tok == first)
}

// Resolve returns one level per paragraph, in order, using fresh state.
func Resolve(paragraphs [][]string) []int {
	r := NewResolver()
	levels := make([]int, 0, len(paragraphs))
	for _, p := range paragraphs {
		levels = append(levels, r.Paragraph(p))
	}
	return levels
}
