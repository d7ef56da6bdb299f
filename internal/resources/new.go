package resources

import (
	"time"

	"github.com/nguyentantai21042004/docsum/internal/config"
	"github.com/nguyentantai21042004/docsum/internal/logger"
	"github.com/nguyentantai21042004/docsum/pkg/retry"
)

type implProvisioner struct {
	cacheDir string
	source   Source
	logger   logger.Logger

	gate chan struct{}
	set  *Set
}

// New creates a Provisioner from the resources section of the config.
func New(cfg config.ResourcesConfig, log logger.Logger) Provisioner {
	var src Source
	if cfg.Source == "remote" {
		src = NewHTTPSource(cfg.BaseURL, nil, retry.Config{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  time.Second,
		})
	} else {
		src = NewBundledSource()
	}
	return NewWithSource(cfg.CacheDir, src, log)
}

// NewWithSource creates a Provisioner that fills cacheDir from src.
func NewWithSource(cacheDir string, src Source, log logger.Logger) Provisioner {
	return &implProvisioner{
		cacheDir: cacheDir,
		source:   src,
		logger:   log,
		gate:     make(chan struct{}, 1),
	}
}
