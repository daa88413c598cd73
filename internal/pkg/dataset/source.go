package dataset

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

//go:embed seed/*.json
var seedFS embed.FS

// Source opens one named document.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// HTTPSource fetches documents relative to a base URL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	target, err := url.JoinPath(s.BaseURL, name)
	if err != nil {
		return nil, fmt.Errorf("invalid document url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

// DirSource reads documents from a directory.
type DirSource struct {
	Dir string
}

func (s DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.Dir, filepath.Base(name)))
}

// EmbeddedSource serves the bundled sample documents.
type EmbeddedSource struct{}

func (EmbeddedSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return seedFS.Open("seed/" + filepath.Base(name))
}
