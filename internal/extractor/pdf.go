package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFNative reads every page's plain text with ledongthuc/pdf.
func extractPDFNative(_ context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// extractPDFToText shells out to poppler's pdftotext, which separates pages
// with form feeds.
func (e *implExtractor) extractPDFToText(ctx context.Context, path string) (string, error) {
	out, err := e.executor.Execute(ctx, "pdftotext", "-enc", "UTF-8", path, "-")
	if err != nil {
		return "", err
	}

	pages := strings.Split(out, "\f")
	for len(pages) > 0 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	for i, p := range pages {
		pages[i] = strings.TrimSpace(p)
	}
	return strings.Join(pages, "\n"), nil
}
