package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractBatch_SkipsUnsupported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", []byte("Some notes."))
	writeFile(t, dir, "table.csv", []byte("a,b\n1,2\n"))
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	batch := newTestExtractor(t, nil, nil).ExtractBatch(context.Background(), dir)

	if len(batch) != 1 {
		t.Fatalf("expected exactly one entry, got %d: %v", len(batch), batch.Texts())
	}
	if got := batch["notes.txt"]; got.Failed() || got.Text != "Some notes." {
		t.Errorf("notes.txt = %+v", got)
	}
}

func TestExtractBatch_FailureIsolation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("Alpha document."))
	writeFile(t, dir, "b.TXT", []byte("Beta document."))
	writeDocx(t, dir, "c.docx", para("Gamma document."))
	writeFile(t, dir, "corrupt.pdf", []byte("garbage bytes"))

	batch := newTestExtractor(t, nil, nil).ExtractBatch(context.Background(), dir)

	if len(batch) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(batch))
	}
	if n := batch.Failures(); n != 1 {
		t.Fatalf("expected exactly 1 failure, got %d", n)
	}

	texts := batch.Texts()
	if !IsError(texts["corrupt.pdf"]) {
		t.Errorf("corrupt.pdf should be an error, got %q", texts["corrupt.pdf"])
	}
	for _, name := range []string{"a.txt", "b.TXT", "c.docx"} {
		if IsError(texts[name]) {
			t.Errorf("%s should succeed, got %q", name, texts[name])
		}
	}
}

func TestExtractBatch_MissingFolder(t *testing.T) {
	batch := newTestExtractor(t, nil, nil).ExtractBatch(context.Background(), filepath.Join(t.TempDir(), "missing"))

	if len(batch) != 1 {
		t.Fatalf("expected a single error entry, got %v", batch.Texts())
	}
	res, ok := batch[BatchErrorKey]
	if !ok {
		t.Fatalf("expected key %q", BatchErrorKey)
	}
	if !errors.Is(res.Err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", res.Err)
	}
	if !strings.HasPrefix(res.String(), "Error: folder not found") {
		t.Errorf("unexpected rendering: %q", res.String())
	}
}

func TestExtractIsolated_RecoversPanic(t *testing.T) {
	e := newTestExtractor(t, nil, nil).(*implExtractor)
	e.pdf = func(context.Context, string) (string, error) { panic("nil dereference in parser") }

	dir := t.TempDir()
	writeFile(t, dir, "boom.pdf", []byte("%PDF-1.4"))
	writeFile(t, dir, "ok.txt", []byte("Still processed."))

	batch := e.ExtractBatch(context.Background(), dir)
	if len(batch) != 2 {
		t.Fatalf("expected 2 entries, got %v", batch.Texts())
	}
	if !strings.Contains(batch["boom.pdf"].String(), "nil dereference") {
		t.Errorf("boom.pdf = %q", batch["boom.pdf"].String())
	}
	if batch["ok.txt"].Text != "Still processed." {
		t.Errorf("ok.txt = %+v", batch["ok.txt"])
	}
}

func TestExtractBatch_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("A."))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := newTestExtractor(t, nil, nil).ExtractBatch(ctx, dir)
	if len(batch) != 0 {
		t.Errorf("cancelled batch should not attempt files, got %v", batch.Texts())
	}
}

func TestExtractBatch_NotADirectory(t *testing.T) {
	file := writeFile(t, t.TempDir(), "plain.txt", []byte("not a folder"))

	batch := newTestExtractor(t, nil, nil).ExtractBatch(context.Background(), file)
	res, ok := batch[BatchErrorKey]
	if !ok || len(batch) != 1 {
		t.Fatalf("expected a single %q entry, got %v", BatchErrorKey, batch.Texts())
	}
	if !strings.HasPrefix(res.String(), "Error: cannot read folder") {
		t.Errorf("unexpected rendering: %q", res.String())
	}
}
