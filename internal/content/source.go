package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// ErrStatus is returned when a document request answers with a non-2xx status.
var ErrStatus = errors.New("unexpected response status")

// Source opens a named document such as "data.json".
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// HTTPSource fetches documents relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns a source rooted at baseURL. A nil client means
// http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	u := s.BaseURL + "/" + strings.TrimLeft(name, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to load %s: %w (%d)", name, ErrStatus, resp.StatusCode)
	}
	return resp.Body, nil
}

// FSSource reads documents from a file system, typically the embedded site
// data or a directory on disk.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(strings.TrimLeft(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return f, nil
}
