package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/extractor"
	"github.com/nguyentantai21042004/docsum/internal/logger"
	"github.com/nguyentantai21042004/docsum/internal/resources"
	"github.com/nguyentantai21042004/docsum/internal/watcher"
	"github.com/nguyentantai21042004/docsum/pkg/executor"
	"github.com/robfig/cron/v3"
)

func runBatch(ctx context.Context, cfg *config.Config, log logger.Logger, folder string, show bool) error {
	proc, err := buildProcessor(ctx, cfg, log)
	if err != nil {
		return err
	}

	run, err := proc.ProcessFolder(ctx, folder)
	if show {
		printSummaries(run.Summaries)
	}
	return err
}

func printSummaries(summaries map[string]string) {
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("== %s ==\n%s\n\n", name, summaries[name])
	}
}

func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	proc, err := buildProcessor(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Document summarizer is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Mode: %s", cfg.Summarizer.Mode)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	err = w.Start(ctx)
	log.Info(ctx, "Document summarizer stopped")
	return err
}

func runSchedule(ctx context.Context, cfg *config.Config, log logger.Logger, runOnStart bool) error {
	proc, err := buildProcessor(ctx, cfg, log)
	if err != nil {
		return err
	}

	runOnce := func() {
		if _, err := proc.ProcessFolder(ctx, cfg.Paths.Input); err != nil {
			log.Error(ctx, "Scheduled run failed: %v", err)
		}
	}

	if runOnStart {
		log.Info(ctx, "Running initial batch...")
		runOnce()
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Schedule, func() {
		log.Info(ctx, "Cron triggered, summarizing %s", cfg.Paths.Input)
		runOnce()
	}); err != nil {
		return fmt.Errorf("set up cron schedule %q: %w", cfg.Schedule, err)
	}
	c.Start()
	log.Info(ctx, "Scheduled batch with cron expression: %s", cfg.Schedule)

	<-ctx.Done()
	log.Info(ctx, "Shutting down scheduler...")
	<-c.Stop().Done()
	return nil
}

// runCheck reports which extraction backends and linguistic resources are
// usable on this machine.
func runCheck(ctx context.Context, cfg *config.Config, log logger.Logger, ensure bool) error {
	caps := extractor.DetectCapabilities(executor.New())
	prov := resources.New(cfg.Resources, log)

	if ensure {
		if _, err := prov.Ensure(ctx); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tBACKEND\tSTATUS\tDETAIL")
	for _, st := range caps.Statuses() {
		status, detail := "missing", st.Hint
		if st.Available {
			status, detail = "ok", st.Location
		}
		if selected(cfg, st.Format, st.Name) {
			status += " (selected)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", st.Format, st.Name, status, detail)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "RESOURCE\tSTATUS\tPATH")
	missing := 0
	for _, st := range prov.Status() {
		status := "cached"
		if !st.Cached {
			status = "missing"
			missing++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Resource.Name, status, st.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if missing > 0 {
		fmt.Printf("\n%d resource(s) missing; run `docsum check --ensure` or any processing command to provision them from the %q source.\n", missing, cfg.Resources.Source)
	}
	return nil
}

func selected(cfg *config.Config, f extractor.Format, name string) bool {
	switch f {
	case extractor.FormatPDF:
		return cfg.Extractor.PDFBackend == name
	case extractor.FormatDOCX:
		return cfg.Extractor.DOCXBackend == name
	}
	return false
}

