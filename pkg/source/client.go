package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxExportSize caps downloads; registrar exports are a few hundred KB.
const maxExportSize = 8 << 20

// Client downloads exports from the registrar portal
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new download client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: "rosterctl/1.0",
	}
}

// Fetch downloads the export at url and returns its body as text.
// HTML table exports are flattened to the delimited line format.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	body := io.LimitReader(resp.Body, maxExportSize)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return HTMLToText(body)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}
	return string(data), nil
}
