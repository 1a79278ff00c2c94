// Package http provides net/http implementations of fontloc.StylesheetFetcher
// and fontloc.AssetDownloader.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/fontloc"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// ChromeUserAgent identifies requests as a desktop Chrome browser. Font
// hosts such as Google Fonts choose the font format by user agent.
const ChromeUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/83.0.4103.61 Safari/537.36"

// Ensure Fetcher implements fontloc.StylesheetFetcher at compile time.
var _ fontloc.StylesheetFetcher = (*Fetcher)(nil)

// Fetcher retrieves stylesheets over HTTP.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client. The timeout option is ignored when a
// client is supplied.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent sends ua with every request. Without it, ChromeUserAgent
// is sent only when several stylesheets are fetched as a batch.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// FetchStylesheets retrieves all URLs concurrently and returns the bodies
// concatenated in the order given. The first failure cancels the rest.
func (f *Fetcher) FetchStylesheets(ctx context.Context, urls []string) (string, error) {
	ua := f.userAgent
	if ua == "" && len(urls) > 1 {
		ua = ChromeUserAgent
	}

	bodies := make([]string, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			body, err := f.fetch(gctx, url, ua)
			if err != nil {
				return err
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(bodies, ""), nil
}

func (f *Fetcher) fetch(ctx context.Context, url, ua string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fontloc.Errorf(fontloc.EINVALID, "invalid stylesheet URL %q: %v", url, err)
	}
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fontloc.Errorf(fontloc.EFETCH, "could not fetch stylesheet %s: %v", url, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", fontloc.Errorf(fontloc.EFETCH, "could not fetch stylesheet %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fontloc.Errorf(fontloc.EFETCH, "could not read stylesheet %s: %v", url, err)
	}

	return string(body), nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
