package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/logger"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("docsum", "Extract text from PDF, DOCX and TXT documents and summarize it.")
	configPath = app.Flag("config", "Path to the YAML config file.").Short('c').Default("config.yaml").String()
	logLevel   = app.Flag("log-level", "Override logging.level.").String()

	batchCmd       = app.Command("batch", "Summarize every supported document in a folder once.")
	batchFolder    = batchCmd.Arg("folder", "Folder to scan (defaults to paths.input).").String()
	batchMode      = batchCmd.Flag("mode", "Summarization mode: extractive or abstractive.").Enum("extractive", "abstractive")
	batchSentences = batchCmd.Flag("sentences", "Sentences in an extractive summary.").Int()
	batchMaxLength = batchCmd.Flag("max-length", "Maximum characters in an abstractive summary.").Int()
	batchQuiet     = batchCmd.Flag("quiet", "Do not print summaries to stdout.").Short('q').Bool()

	watchCmd = app.Command("watch", "Watch paths.input and summarize new documents as they arrive.")

	scheduleCmd        = app.Command("schedule", "Summarize paths.input on a cron schedule.")
	scheduleRunOnStart = scheduleCmd.Flag("run-on-start", "Run once before waiting for the first tick.").Bool()

	checkCmd    = app.Command("check", "Report extraction backends and linguistic resources.")
	checkEnsure = checkCmd.Flag("ensure", "Provision missing linguistic resources.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch command {
	case batchCmd.FullCommand():
		if *batchMode != "" {
			cfg.Summarizer.Mode = *batchMode
		}
		if *batchSentences > 0 {
			cfg.Summarizer.Sentences = *batchSentences
		}
		if *batchMaxLength > 0 {
			cfg.Summarizer.MaxLength = *batchMaxLength
		}
		folder := *batchFolder
		if folder == "" {
			folder = cfg.Paths.Input
		}
		err = runBatch(ctx, cfg, log, folder, !*batchQuiet)
	case watchCmd.FullCommand():
		err = runWatch(ctx, cfg, log)
	case scheduleCmd.FullCommand():
		err = runSchedule(ctx, cfg, log, *scheduleRunOnStart)
	case checkCmd.FullCommand():
		err = runCheck(ctx, cfg, log, *checkEnsure)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "%s failed: %v", command, err)
		os.Exit(1)
	}
}

// loadConfig falls back to built-in defaults when the default config file
// is absent.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && path == "config.yaml" {
		return config.Default(), nil
	}
	return config.Load(path)
}
