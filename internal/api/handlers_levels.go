package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/dgallion1/codeformat/internal/heading"
	"github.com/dgallion1/codeformat/internal/outline"
)

// maxJSONBody bounds the JSON request bodies of the synchronous endpoints.
const maxJSONBody = 10 << 20

type levelsRequest struct {
	Paragraphs [][]string `json:"paragraphs"`
}

// handleLevels resolves pre-extracted heading tokens.
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	var req levelsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"levels": heading.Resolve(req.Paragraphs)})
}

type markersRequest struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

type markersParagraph struct {
	Markers []string `json:"markers"`
	Level   int      `json:"level"`
	Indent  int      `json:"indent"`
}

// handleMarkers extracts markers from raw paragraph text and resolves them.
func (s *Server) handleMarkers(w http.ResponseWriter, r *http.Request) {
	var req markersRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	doc := &doctree.Document{Title: req.Title}
	for _, text := range req.Paragraphs {
		doc.Add(text, 0)
	}
	enabled := s.enabled()
	if enabled {
		outline.Annotate(doc)
	} else {
		outline.Clear(doc)
	}

	opts := s.orchestrator.Worker().RenderOptions()
	out := make([]markersParagraph, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		m := p.Markers
		if m == nil {
			m = []string{}
		}
		out = append(out, markersParagraph{Markers: m, Level: p.Level, Indent: opts.Margin(p.Level)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"enabled":    enabled,
		"paragraphs": out,
		"outline":    outline.Summarize(doc),
	})
}
