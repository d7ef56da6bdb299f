package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (e *implExtractor) Extract(ctx context.Context, path string) Result {
	format, ok := Detect(path)
	if !ok {
		return Result{Err: &ProcessError{Name: path, Err: fmt.Errorf("unsupported file extension")}}
	}

	switch format {
	case FormatPDF:
		return e.ExtractPDF(ctx, path)
	case FormatDOCX:
		return e.ExtractDOCX(ctx, path)
	default:
		return e.ExtractTXT(ctx, path)
	}
}

// ExtractPDF concatenates the text of every page, separated by newlines.
func (e *implExtractor) ExtractPDF(ctx context.Context, path string) Result {
	return e.run(ctx, FormatPDF, e.pdfBackend, path, e.pdf)
}

// ExtractDOCX joins every non-empty paragraph with newlines.
func (e *implExtractor) ExtractDOCX(ctx context.Context, path string) Result {
	return e.run(ctx, FormatDOCX, e.docxBackend, path, e.docx)
}

// ExtractTXT decodes the file with the first encoding that accepts it.
func (e *implExtractor) ExtractTXT(ctx context.Context, path string) Result {
	return e.run(ctx, FormatTXT, "native", path, e.extractTXT)
}

func (e *implExtractor) run(ctx context.Context, format Format, backend, path string, fn extractFunc) Result {
	if fn == nil || !e.caps.Available(format, backend) {
		b, _ := lookupBackend(format, backend)
		hint := b.Hint
		if hint == "" {
			hint = fmt.Sprintf("Set extractor.%s_backend to \"native\".", format)
		}
		e.logger.Warn(ctx, "%s backend %q not available, cannot extract %s", strings.ToUpper(string(format)), backend, path)
		return Result{Err: &UnavailableError{Format: format, Backend: backend, Path: path, Hint: hint}}
	}

	info, err := os.Stat(path)
	if err != nil {
		return e.fail(ctx, format, path, err)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return e.fail(ctx, format, path, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), e.maxFileSize))
	}

	text, err := safely(func() (string, error) { return fn(ctx, path) })
	if err != nil {
		return e.fail(ctx, format, path, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return e.fail(ctx, format, path, ErrEmptyContent)
	}

	e.logger.Debug(ctx, "Extracted %d characters from %s (%s/%s)", len(text), path, format, backend)
	return Result{Text: text}
}

func (e *implExtractor) fail(ctx context.Context, format Format, path string, err error) Result {
	xerr := &ExtractError{Format: format, Path: path, Err: err}
	e.logger.Warn(ctx, "%v", xerr)
	return Result{Err: xerr}
}

// safely converts a panic inside a parser into an error.
func safely(fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return fn()
}
