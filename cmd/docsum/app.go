package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/extractor"
	"github.com/nguyentantai21042004/docsum/internal/logger"
	"github.com/nguyentantai21042004/docsum/internal/processor"
	"github.com/nguyentantai21042004/docsum/internal/report"
	"github.com/nguyentantai21042004/docsum/internal/resources"
	"github.com/nguyentantai21042004/docsum/internal/summarizer"
	"github.com/nguyentantai21042004/docsum/pkg/executor"
)

// buildProcessor wires every component. Failing to provision the
// linguistic resources is fatal for the caller.
func buildProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	exec := executor.New()
	ext, err := extractor.New(cfg.Extractor, extractor.DetectCapabilities(exec), exec, log)
	if err != nil {
		return nil, fmt.Errorf("create extractor: %w", err)
	}

	set, err := resources.New(cfg.Resources, log).Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("ensure linguistic resources: %w", err)
	}

	w, err := report.New(cfg.Report, cfg.Paths.Output, log)
	if err != nil {
		return nil, fmt.Errorf("create report writer: %w", err)
	}

	sum, err := summarizer.New(set, log)
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}

	return processor.New(cfg, ext, sum, w, log), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
	}
	if cfg.Paths.Archived != "" {
		dirs = append(dirs, cfg.Paths.Archived)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
