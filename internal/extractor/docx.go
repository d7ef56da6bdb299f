package extractor

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// maxXMLDepth bounds element nesting in document.xml.
const maxXMLDepth = 256

// extractDOCXNative opens the archive with nguyenthenguyen/docx and walks
// word/document.xml paragraph by paragraph.
func extractDOCXNative(_ context.Context, path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(strings.NewReader(doc.Editable().GetContent()))
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs returns the trimmed, non-empty text of every top-level w:p
// in document order. Text inside nested paragraphs (text boxes) belongs to
// the enclosing paragraph.
func docxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		pDepth     int
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > maxXMLDepth {
				return nil, fmt.Errorf("parse document.xml: nesting depth exceeds %d", maxXMLDepth)
			}
			switch t.Name.Local {
			case "p":
				pDepth++
				if pDepth == 1 {
					current.Reset()
				}
			case "t":
				inText = pDepth > 0
			case "tab":
				if pDepth > 0 {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if pDepth > 0 {
					current.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			depth--
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if pDepth == 0 {
					continue
				}
				pDepth--
				if pDepth == 0 {
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		}
	}

	return paragraphs, nil
}

// extractDOCXPandoc converts the document to plain text with pandoc, which
// separates paragraphs with blank lines.
func (e *implExtractor) extractDOCXPandoc(ctx context.Context, path string) (string, error) {
	out, err := e.executor.Execute(ctx, "pandoc", "--from=docx", "--to=plain", "--wrap=none", path)
	if err != nil {
		return "", err
	}

	var paragraphs []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
