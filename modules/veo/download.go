package veo

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Downloader - fetches the raw bytes behind a result reference
type Downloader interface {
	Fetch(ctx context.Context, res Result) ([]byte, string, error)
}

// HTTPDownloader - plain GET of the result URI with the API key appended as a
// query parameter, the way the file service expects it.
type HTTPDownloader struct {
	apiKey string
	client *http.Client
}

func NewHTTPDownloader(apiKey string) *HTTPDownloader {
	return &HTTPDownloader{
		apiKey: apiKey,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// Fetch - download one generated video; returns bytes and the mime type
func (d *HTTPDownloader) Fetch(ctx context.Context, res Result) ([]byte, string, error) {
	u, err := url.Parse(res.URI)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download video: bad result URI: %w", err)
	}
	q := u.Query()
	q.Set("key", d.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download video: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to download video: status %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download video: %w", err)
	}

	mime := res.MIMEType
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		mime = ct
	}
	if mime == "" {
		mime = "video/mp4"
	}

	log.Printf("📥 Downloaded generated video: %d bytes (%s)", len(data), mime)
	return data, mime, nil
}

var _ Downloader = (*HTTPDownloader)(nil)
