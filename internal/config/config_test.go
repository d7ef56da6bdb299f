package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "abstractive mode",
			config: Config{
				Summarizer: SummarizerConfig{Mode: "abstractive", MaxLength: 80},
			},
			wantErr: false,
		},
		{
			name: "unknown mode",
			config: Config{
				Summarizer: SummarizerConfig{Mode: "generative"},
			},
			wantErr: true,
		},
		{
			name: "negative sentences",
			config: Config{
				Summarizer: SummarizerConfig{Sentences: -1},
			},
			wantErr: true,
		},
		{
			name: "remote source without base url",
			config: Config{
				Resources: ResourcesConfig{Source: "remote"},
			},
			wantErr: true,
		},
		{
			name: "negative max retries",
			config: Config{
				Resources: ResourcesConfig{MaxRetries: -1},
			},
			wantErr: true,
		},
		{
			name: "unknown report format",
			config: Config{
				Report: ReportConfig{Format: "pdf"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Summarizer.Sentences != 5 {
		t.Errorf("Sentences = %d, want 5", cfg.Summarizer.Sentences)
	}
	if cfg.Summarizer.MaxLength != 150 {
		t.Errorf("MaxLength = %d, want 150", cfg.Summarizer.MaxLength)
	}
	if cfg.Extractor.PDFBackend != "native" {
		t.Errorf("PDFBackend = %q, want native", cfg.Extractor.PDFBackend)
	}
	if got := cfg.Extractor.Encodings; len(got) != 3 || got[0] != "utf-8" {
		t.Errorf("Encodings = %v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
extractor:
  pdf_backend: "pdfcpu"
  encodings: ["utf-8", "latin-1"]

summarizer:
  mode: "abstractive"
  sentences: 3
  max_length: 120

resources:
  cache_dir: "${DOCSUM_TEST_CACHE}"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCSUM_TEST_CACHE=/tmp/docsum-cache\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DOCSUM_TEST_CACHE") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Extractor.PDFBackend != "pdfcpu" {
		t.Errorf("PDFBackend = %v, want pdfcpu", cfg.Extractor.PDFBackend)
	}
	if cfg.Summarizer.Mode != "abstractive" || cfg.Summarizer.MaxLength != 120 {
		t.Errorf("Summarizer = %+v", cfg.Summarizer)
	}
	if cfg.Resources.CacheDir != "/tmp/docsum-cache" {
		t.Errorf("CacheDir = %q, want value from .env", cfg.Resources.CacheDir)
	}
	if cfg.Report.Format != "markdown" {
		t.Errorf("Report.Format = %q, want default markdown", cfg.Report.Format)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DOCSUM_DIR", "/srv/docs")

	if got := expandEnvVars("input: ${DOCSUM_DIR}/in"); got != "input: /srv/docs/in" {
		t.Errorf("expandEnvVars = %q", got)
	}
	if got := expandEnvVars("x: ${DOCSUM_UNSET_VAR}"); got != "x: ${DOCSUM_UNSET_VAR}" {
		t.Errorf("unset variables should be left as is, got %q", got)
	}
}
