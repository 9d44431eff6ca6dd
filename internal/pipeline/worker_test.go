package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/codeformat/internal/config"
)

const statuteText = `(a) (1) The Legislature finds

(2) (A) that housing is scarce

(i) in cities

(ii) in towns

(b) It is the policy of the state
`

func testConfig() config.Config {
	return config.Config{
		IndentUnit:    25,
		IndentPadding: 5,
		TextIndent:    2,
		WorkerCount:   2,
		MaxQueueSize:  4,
		JobTTL:        time.Hour,
		Enabled:       true,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJob(filename, format string, data []byte) *Job {
	now := time.Now()
	job := &Job{
		ID:        NewJobID(),
		DocID:     ContentHashHex(data)[:16],
		Status:    StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		Format:    format,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)
	return job
}

func TestWorker_ProcessText(t *testing.T) {
	w := NewWorker(testConfig(), nil, testLogger())
	job := newJob("sec.txt", "text", []byte(statuteText))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%v)", snap.Status, snap.Progress.Errors)
	}
	if snap.Progress.Paragraphs != 5 {
		t.Errorf("expected 5 paragraphs, got %d", snap.Progress.Paragraphs)
	}
	if snap.Progress.Outline.MaxDepth != 4 {
		t.Errorf("expected max depth 4, got %d", snap.Progress.Outline.MaxDepth)
	}

	out, ct := job.Output()
	if !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(string(out), "\n        (i) in cities\n") {
		t.Errorf("expected (i) indented at level 4, got:\n%s", out)
	}
}

func TestWorker_ProcessDisabled(t *testing.T) {
	w := NewWorker(testConfig(), func() bool { return false }, testLogger())
	job := newJob("sec.txt", "json", []byte(statuteText))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", snap.Status)
	}
	if snap.Progress.Outline.MaxDepth != 0 {
		t.Errorf("expected no depth when disabled, got %d", snap.Progress.Outline.MaxDepth)
	}
}

func TestWorker_ProcessUnsupported(t *testing.T) {
	w := NewWorker(testConfig(), nil, testLogger())
	job := newJob("data.csv", "html", []byte("a,b"))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed || snap.Phase != "parsing" {
		t.Errorf("expected failed in parsing, got %s/%s", snap.Status, snap.Phase)
	}
	if len(snap.Progress.Errors) != 1 {
		t.Errorf("expected 1 error, got %v", snap.Progress.Errors)
	}
}

func TestWorker_RestyleNeedsHTML(t *testing.T) {
	w := NewWorker(testConfig(), nil, testLogger())
	job := newJob("sec.txt", "restyle", []byte(statuteText))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed || snap.Phase != "rendering" {
		t.Errorf("expected failed in rendering, got %s/%s", snap.Status, snap.Phase)
	}
}

func TestWorker_Restyle(t *testing.T) {
	page := `<html><body><div id="single_law_section"><p>(a) (1) (A) one</p><p>(i) two</p></div></body></html>`
	w := NewWorker(testConfig(), nil, testLogger())
	job := newJob("sec.html", "restyle", []byte(page))
	w.Process(context.Background(), job)

	out, _ := job.Output()
	if !strings.Contains(string(out), `<p style="margin: 0 0 0 100px; padding: 0 0 0 5px; display: block">(i) two</p>`) {
		t.Errorf("expected restyled roman paragraph, got:\n%s", out)
	}
}

func TestWorker_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewWorker(testConfig(), nil, testLogger())
	job := newJob("sec.txt", "text", []byte(statuteText))
	w.Process(ctx, job)
	if job.Snapshot().Status != StatusFailed {
		t.Errorf("expected failed job for cancelled context")
	}
}

func TestOrchestrator_SubmitAndComplete(t *testing.T) {
	o := NewOrchestrator(testConfig(), nil, testLogger())
	o.Start(context.Background())
	defer o.Stop()

	job := newJob("sec.md", "html", []byte(statuteText))
	if err := o.Submit(job); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !o.GetJob(job.ID).Snapshot().Status.Done() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for job")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if got := o.GetJob(job.ID).Snapshot().Status; got != StatusCompleted {
		t.Errorf("expected completed, got %s", got)
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	cfg := testConfig()
	cfg.MaxQueueSize = 1
	// Not started: nothing drains the queue.
	o := NewOrchestrator(cfg, nil, testLogger())

	if err := o.Submit(newJob("a.txt", "text", []byte("(a) x"))); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second := newJob("b.txt", "text", []byte("(b) y"))
	if err := o.Submit(second); err == nil {
		t.Fatal("expected queue full error")
	}
	if second.Snapshot().Status != StatusFailed {
		t.Errorf("expected rejected job to be failed, got %s", second.Snapshot().Status)
	}
	if o.QueueDepth() != 1 {
		t.Errorf("expected queue depth 1, got %d", o.QueueDepth())
	}
}

func TestWorker_RestyleReadsToggleOnce(t *testing.T) {
	page := `<html><body><p>(a) (1) (A) one</p><p>(i) two</p></body></html>`
	calls := 0
	// Flips on every read, so a second read would disagree with the first.
	toggle := func() bool {
		calls++
		return calls%2 == 1
	}
	w := NewWorker(testConfig(), toggle, testLogger())
	job := newJob("sec.html", "restyle", []byte(page))
	w.Process(context.Background(), job)

	if calls != 1 {
		t.Errorf("expected toggle read once, got %d", calls)
	}
	out, _ := job.Output()
	if !strings.Contains(string(out), "margin: 0 0 0 100px") {
		t.Errorf("expected resolved levels in restyled page, got:\n%s", out)
	}
	if job.Snapshot().Progress.Outline.MaxDepth != 4 {
		t.Errorf("expected outline depth 4, got %d", job.Snapshot().Progress.Outline.MaxDepth)
	}
}
