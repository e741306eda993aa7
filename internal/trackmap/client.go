// Package trackmap is a client for the Create Track Map server API, the
// upstream source of the raw station network and live train snapshots.
package trackmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/C1200/community-server-railway/internal/logging"
)

// feedHTTPClient is a dedicated HTTP client for feed fetching, configured
// with explicit timeouts and transport limits to avoid the pitfalls of
// http.DefaultClient (no timeout, shared global state). The transport is
// cloned from http.DefaultTransport to preserve important defaults
// (ProxyFromEnvironment, DialContext, HTTP/2, keepalives).
var feedHTTPClient = newFeedHTTPClient()

func newFeedHTTPClient() *http.Client {
	var transport *http.Transport
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		transport = t.Clone()
	} else {
		transport = &http.Transport{}
	}
	transport.MaxIdleConns = 10
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 90 * time.Second
	transport.TLSHandshakeTimeout = 10 * time.Second

	return &http.Client{
		// Absolute safety net per request. Callers also set a per-poll
		// context timeout; the stricter of the two wins.
		Timeout:   10 * time.Second,
		Transport: transport,
	}
}

// maxBodySize caps feed response bodies. The live fleet is small, so even a
// generous bound is far above any legitimate payload.
const maxBodySize = 8 * 1024 * 1024

// Client fetches snapshots from a Track Map server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the Track Map server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: feedHTTPClient,
	}
}

// Network fetches the station network snapshot.
func (c *Client) Network(ctx context.Context) (*Network, error) {
	var network Network
	if err := c.getJSON(ctx, "/api/network", &network); err != nil {
		return nil, err
	}
	return &network, nil
}

// Trains fetches the live train snapshot.
func (c *Client) Trains(ctx context.Context) (*Trains, error) {
	var trains Trains
	if err := c.getJSON(ctx, "/api/trains", &trains); err != nil {
		return nil, err
	}
	return &trains, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create trackmap request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute trackmap request: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "trackmap_client")),
		"http_response_body")

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trackmap fetch failed: %s returned %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return fmt.Errorf("failed to read trackmap response body: %w", err)
	}
	if int64(len(body)) > maxBodySize {
		return fmt.Errorf("trackmap response exceeds size limit of %d bytes", maxBodySize)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode trackmap response from %s: %w", url, err)
	}
	return nil
}
