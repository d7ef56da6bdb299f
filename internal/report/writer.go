package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04"

func (w *implWriter) Write(ctx context.Context, summaries map[string]Entry) (Stats, error) {
	var stats Stats
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return stats, fmt.Errorf("create output dir: %w", err)
	}

	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	generated := w.now()
	for _, name := range names {
		entry := summaries[name]
		if entry.Err != nil {
			w.logger.Warn(ctx, "Skipping report for %s: %v", name, entry.Err)
			stats.Skipped++
			continue
		}

		files, err := w.writeOne(name, entry.Summary, generated)
		if err != nil {
			return stats, fmt.Errorf("write report for %s: %w", name, err)
		}

		for _, f := range files {
			w.logger.Info(ctx, "[DONE] %s -> %s", name, f)
		}
		stats.Files = append(stats.Files, files...)
		stats.Written++
	}

	w.logger.Info(ctx, "Reports complete: %d written, %d skipped", stats.Written, stats.Skipped)
	return stats, nil
}

func (w *implWriter) writeOne(name, summary string, generated time.Time) ([]string, error) {
	// The source extension stays in the output name so that a.pdf and a.txt
	// do not collide.
	base := filepath.Join(w.outputDir, filepath.Base(name))
	var files []string

	if w.markdown {
		path := base + ".md"
		if err := os.WriteFile(path, []byte(renderMarkdown(name, summary, generated)), 0644); err != nil {
			return files, err
		}
		files = append(files, path)
	}

	if w.docx {
		path := base + ".docx"
		if err := writeDocx(name, generated.Format(timestampLayout), summary, path); err != nil {
			return files, err
		}
		files = append(files, path)
	}

	return files, nil
}

func renderMarkdown(title, summary string, generated time.Time) string {
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		title,
		generated.Format(timestampLayout),
		strings.TrimSpace(summary),
	)
}
