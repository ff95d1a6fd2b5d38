package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const defaultMaxBodyBytes = 8 << 20

// Client issues a single bounded GET per call. There are no retries and no
// caching: the caller decides what a failed fetch means.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds the whole request when > 0. Zero leaves the request
	// unbounded except for the caller's context.
	Timeout time.Duration
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
	// MaxBodyBytes caps the response size. Zero means default (8 MiB).
	MaxBodyBytes int64
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

// Get fetches the URL and returns the response body decoded to UTF-8 along
// with the Content-Type header. Only http(s) URLs and text-bearing content
// types (HTML, XHTML, plain text) are accepted.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, "", fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(req.Context(), c.Timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if !isAllowedContentType(contentType) {
		return nil, "", fmt.Errorf("unsupported content type: %s", contentType)
	}

	max := c.MaxBodyBytes
	if max <= 0 {
		max = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, max+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > max {
		return nil, "", fmt.Errorf("body exceeds %d bytes", max)
	}

	decoded, err := decodeToUTF8(body, contentType)
	if err != nil {
		return nil, "", fmt.Errorf("decode body: %w", err)
	}
	return decoded, contentType, nil
}

// decodeToUTF8 converts body to UTF-8 using the charset declared in the
// Content-Type header or sniffed from the document itself. Already-UTF-8
// input passes through untouched.
func decodeToUTF8(body []byte, contentType string) ([]byte, error) {
	preview := body
	if len(preview) > 1024 {
		preview = preview[:1024]
	}
	enc, name, _ := charset.DetermineEncoding(preview, contentType)
	if name == "utf-8" {
		return body, nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func isAllowedContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "text/html") ||
		strings.HasPrefix(ct, "application/xhtml+xml") ||
		strings.HasPrefix(ct, "text/plain")
}
