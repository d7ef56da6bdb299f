package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ExtractBatch walks folder in directory order. Non-regular files and
// unsupported extensions are skipped silently; every other file gets exactly
// one entry, even if extracting it panics.
func (e *implExtractor) ExtractBatch(ctx context.Context, folder string) Batch {
	batch := make(Batch)

	entries, err := os.ReadDir(folder)
	if err != nil {
		e.logger.Error(ctx, "Cannot read folder %s: %v", folder, err)
		batch[BatchErrorKey] = Result{Err: &FolderError{Path: folder, Err: err}}
		return batch
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			e.logger.Warn(ctx, "Batch extraction of %s stopped: %v", folder, err)
			break
		}

		name := entry.Name()
		if !Supported(name) {
			continue
		}

		path := filepath.Join(folder, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		batch[name] = e.extractIsolated(ctx, name, path)
	}

	e.logger.Info(ctx, "Extracted %d files from %s (%d failed)", len(batch), folder, batch.Failures())
	return batch
}

func (e *implExtractor) extractIsolated(ctx context.Context, name, path string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error(ctx, "Error processing %s: %v", name, r)
			res = Result{Err: &ProcessError{Name: name, Err: fmt.Errorf("%v", r)}}
		}
	}()
	return e.Extract(ctx, path)
}
