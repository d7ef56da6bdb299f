package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

type decodeFunc func([]byte) (string, error)

type namedDecoder struct {
	name   string
	decode decodeFunc
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var errInvalidUTF8 = errors.New("invalid UTF-8")

func decodeUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

func decodeWith(enc encoding.Encoding) decodeFunc {
	return func(data []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// decoders lists the accepted encoding names. "utf-16" requires a byte order
// mark, so it only claims files that announce themselves.
var decoders = map[string]decodeFunc{
	"utf-8":        decodeUTF8,
	"utf8":         decodeUTF8,
	"utf-16":       decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)),
	"utf-16le":     decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)),
	"utf-16be":     decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)),
	"latin-1":      decodeWith(charmap.ISO8859_1),
	"latin1":       decodeWith(charmap.ISO8859_1),
	"iso-8859-1":   decodeWith(charmap.ISO8859_1),
	"windows-1252": decodeWith(charmap.Windows1252),
	"cp1252":       decodeWith(charmap.Windows1252),
}

func resolveEncodings(names []string) ([]namedDecoder, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one text encoding is required")
	}
	out := make([]namedDecoder, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		dec, ok := decoders[key]
		if !ok {
			return nil, fmt.Errorf("unknown text encoding %q", name)
		}
		out = append(out, namedDecoder{name: key, decode: dec})
	}
	return out, nil
}

func (e *implExtractor) extractTXT(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	tried := make([]string, 0, len(e.encodings))
	for _, enc := range e.encodings {
		text, err := enc.decode(data)
		if err == nil {
			e.logger.Debug(ctx, "Decoded %s as %s", path, enc.name)
			return strings.TrimSpace(text), nil
		}
		tried = append(tried, enc.name)
	}

	return "", fmt.Errorf("%w (tried %s)", ErrUndecodable, strings.Join(tried, ", "))
}
