package resources

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/neurosnap/sentences/data"
	"github.com/nguyentantai21042004/docsum/pkg/retry"
)

//go:embed data/english
var bundledStopwords []byte

// maxResourceSize caps a remote download.
const maxResourceSize = 32 << 20

type bundledSource struct{}

// NewBundledSource serves resources compiled into the binary: the English
// Punkt model shipped with the sentences package and an embedded stopword
// list. It never touches the network.
func NewBundledSource() Source {
	return bundledSource{}
}

func (bundledSource) Name() string { return "bundled" }

func (bundledSource) Fetch(_ context.Context, r Resource) ([]byte, error) {
	switch r {
	case Punkt:
		b, err := data.Asset("data/english.json")
		if err != nil {
			return nil, fmt.Errorf("read bundled punkt model: %w", err)
		}
		return b, nil
	case Stopwords:
		return append([]byte(nil), bundledStopwords...), nil
	default:
		return nil, fmt.Errorf("no bundled copy of resource %q", r.Name)
	}
}

type httpSource struct {
	baseURL string
	client  *http.Client
	retry   retry.Config
}

// NewHTTPSource downloads resources from baseURL + "/" + Resource.Path,
// retrying transient failures with exponential backoff.
func NewHTTPSource(baseURL string, client *http.Client, cfg retry.Config) Source {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &httpSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retry:   cfg,
	}
}

func (s *httpSource) Name() string { return "remote" }

func (s *httpSource) Fetch(ctx context.Context, r Resource) ([]byte, error) {
	url := s.baseURL + "/" + r.Path

	var body []byte
	err := retry.WithBackoff(ctx, s.retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Permanent(err)
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return &retry.StatusError{URL: url, StatusCode: resp.StatusCode}
		}

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceSize+1))
		if err != nil {
			return err
		}
		if len(b) > maxResourceSize {
			return retry.Permanent(fmt.Errorf("resource exceeds %d bytes", maxResourceSize))
		}
		if len(b) == 0 {
			return retry.Permanent(fmt.Errorf("empty response body"))
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
