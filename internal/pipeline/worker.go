package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/codeformat/internal/config"
	"github.com/dgallion1/codeformat/internal/doctree"
	"github.com/dgallion1/codeformat/internal/outline"
	"github.com/dgallion1/codeformat/internal/parser"
	"github.com/dgallion1/codeformat/internal/render"
)

// Worker formats documents. It holds no per-document state, so one Worker
// may serve every goroutine in the pool.
type Worker struct {
	log        *slog.Logger
	enabled    func() bool
	renderOpts render.Options
	parserOpts parser.Options
}

// NewWorker returns a worker. enabled is consulted for every document; when
// it reports false documents are rendered without indentation.
func NewWorker(cfg config.Config, enabled func() bool, log *slog.Logger) *Worker {
	if enabled == nil {
		enabled = func() bool { return cfg.Enabled }
	}
	return &Worker{
		log:     log,
		enabled: enabled,
		renderOpts: render.Options{
			Unit:       cfg.IndentUnit,
			Padding:    cfg.IndentPadding,
			TextIndent: cfg.TextIndent,
		},
		parserOpts: parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
	}
}

// Enabled reports whether documents currently get indentation.
func (w *Worker) Enabled() bool {
	return w.enabled()
}

// RenderOptions returns the indentation settings used for output.
func (w *Worker) RenderOptions() render.Options {
	return w.renderOpts
}

// Parse reads a document and annotates its outline levels.
func (w *Worker) Parse(data []byte, filename, title string) (*doctree.Document, error) {
	doc, err := w.parse(data, filename, title)
	if err != nil {
		return nil, err
	}
	w.annotate(doc)
	return doc, nil
}

func (w *Worker) parse(data []byte, filename, title string) (*doctree.Document, error) {
	p, err := parser.ForFile(filename, w.parserOpts)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if title != "" {
		doc.Title = title
	}
	return doc, nil
}

// annotate assigns levels, or clears them when formatting is off. It
// reports whether levels were assigned.
func (w *Worker) annotate(doc *doctree.Document) bool {
	if !w.enabled() {
		outline.Clear(doc)
		return false
	}
	outline.Annotate(doc)
	return true
}

// Render writes doc in the named format. The restyle format rewrites the
// original HTML upload and so needs src; it indents only when doc was
// resolved.
func (w *Worker) Render(out io.Writer, doc *doctree.Document, format string, src []byte) (string, error) {
	if format == render.RestyleName {
		if !isHTML(doc.Source) {
			return "", fmt.Errorf("restyle needs an HTML source, got %s", doc.Source)
		}
		if err := render.Restyle(out, bytes.NewReader(src), w.renderOpts, doc.Resolved); err != nil {
			return "", err
		}
		return "text/html; charset=utf-8", nil
	}
	f, err := render.ForName(format)
	if err != nil {
		return "", err
	}
	if err := f.Render(out, doc, w.renderOpts); err != nil {
		return "", fmt.Errorf("render %s: %w", format, err)
	}
	return f.ContentType(), nil
}

// Process runs the full formatting pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "format", job.Format)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "queued")
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	data := job.FileData()
	doc, err := w.parse(data, job.Filename, job.Title)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Resolve levels
	job.SetStatus(StatusResolving, "resolving")
	if !w.annotate(doc) {
		log.Info("formatting disabled, levels cleared")
	}
	stats := outline.Summarize(doc)
	job.SetOutline(stats)
	log.Info("resolved outline", "paragraphs", stats.Paragraphs, "marked", stats.Marked, "max_depth", stats.MaxDepth)

	// Phase 3: Render
	job.SetStatus(StatusRendering, "rendering")
	var out bytes.Buffer
	contentType, err := w.Render(&out, doc, job.Format, data)
	if err != nil {
		log.Error("render failed", "error", err)
		job.AddError(fmt.Sprintf("render: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}
	job.SetOutput(out.Bytes(), contentType)
	job.SetStatus(StatusCompleted, "done")
	log.Info("formatting complete", "bytes", out.Len())
}

func isHTML(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
