package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/docsum/internal/report"
)

// Process orchestrates extract, summarize and report for one document
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := filepath.Base(path)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting document processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract text
	res := p.extractor.Extract(ctx, path)
	if res.Failed() {
		return fmt.Errorf("extract: %w", res.Err)
	}

	// Step 2: Summarize
	summary := p.summarizer.Summarize(res.Text, p.opts)

	// Step 3: Write report
	stats, err := p.writer.Write(ctx, map[string]report.Entry{name: {Summary: summary}})
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	// Step 4: Move original to archived folder
	if p.cfg.Paths.Archived != "" {
		if err := p.moveToArchived(ctx, path); err != nil {
			p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	for _, f := range stats.Files {
		p.logger.Info(ctx, "Output report: %s", f)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// ProcessFolder extracts and summarizes every supported document in folder.
// Failures travel as errors up to the report writer and are rendered to
// "Error..." strings only in Run.Summaries.
func (p *implProcessor) ProcessFolder(ctx context.Context, folder string) (Run, error) {
	startTime := time.Now()
	run := Run{ID: uuid.NewString()}

	p.logger.Info(ctx, "Run %s: processing folder %s", run.ID, folder)

	batch := p.extractor.ExtractBatch(ctx, folder)
	p.logger.Info(ctx, "Run %s: extracted %d documents (%d failed)", run.ID, len(batch), batch.Failures())

	entries := make(map[string]report.Entry, len(batch))
	run.Summaries = make(map[string]string, len(batch))
	texts := make(map[string]string, len(batch))
	for name, res := range batch {
		if res.Failed() {
			entries[name] = report.Entry{Err: res.Err}
			run.Summaries[name] = res.String()
			run.Failures++
			continue
		}
		texts[name] = res.Text
	}

	for name, sum := range p.summarizer.BatchResults(ctx, texts, p.opts) {
		if sum.Failed() {
			entries[name] = report.Entry{Err: sum.Err}
			run.Failures++
		} else {
			entries[name] = report.Entry{Summary: sum.Text}
		}
		run.Summaries[name] = sum.String()
	}

	stats, err := p.writer.Write(ctx, entries)
	run.Report = stats
	if err != nil {
		return run, fmt.Errorf("write reports: %w", err)
	}

	p.logger.Info(ctx, "Run %s: %d reports written, %d skipped in %s", run.ID, stats.Written, stats.Skipped, time.Since(startTime))
	return run, nil
}
