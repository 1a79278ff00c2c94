package http

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/fs"
	"golang.org/x/sync/errgroup"
)

// Ensure Downloader implements fontloc.AssetDownloader at compile time.
var _ fontloc.AssetDownloader = (*Downloader)(nil)

// Downloader saves remote font files under a local directory, mirroring
// each URL's host and path (see fontloc.AssetPath).
type Downloader struct {
	dir         string
	client      *http.Client
	concurrency int
	limiter     *HostLimiter
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithHTTPClient sets the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) DownloaderOption {
	return func(d *Downloader) {
		d.client = c
	}
}

// WithConcurrency bounds the number of simultaneous downloads.
// Zero, the default, starts every download at once.
func WithConcurrency(n int) DownloaderOption {
	return func(d *Downloader) {
		d.concurrency = n
	}
}

// WithRateLimit limits requests to rps per host. Zero disables limiting.
func WithRateLimit(rps float64) DownloaderOption {
	return func(d *Downloader) {
		if rps > 0 {
			d.limiter = NewHostLimiter(rps)
		} else {
			d.limiter = nil
		}
	}
}

// NewDownloader creates a Downloader that stores fonts under dir.
func NewDownloader(dir string, opts ...DownloaderOption) *Downloader {
	d := &Downloader{dir: dir}
	for _, opt := range opts {
		opt(d)
	}
	if d.client == nil {
		d.client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return d
}

// Download fetches every distinct face source that is not already on disk.
// Downloads run concurrently with no ordering between them; the first
// failure cancels the others and is returned. Files saved before a failure
// are kept.
func (d *Downloader) Download(ctx context.Context, faces []fontloc.FontFace) error {
	g, gctx := errgroup.WithContext(ctx)
	if d.concurrency > 0 {
		g.SetLimit(d.concurrency)
	}

	seen := make(map[string]bool, len(faces))
	for _, face := range faces {
		src := face.Src
		if src == "" || seen[src] {
			continue
		}
		seen[src] = true
		g.Go(func() error {
			return d.download(gctx, src)
		})
	}

	return g.Wait()
}

func (d *Downloader) download(ctx context.Context, src string) error {
	path, err := fontloc.AssetPath(d.dir, src)
	if err != nil {
		return err
	}

	// If we already have the font, skip downloading it.
	if ok, err := fs.FileExists(path); err != nil {
		return err
	} else if ok {
		return nil
	}

	if err := d.limiter.Wait(ctx, src); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fontloc.Errorf(fontloc.EINVALID, "invalid font URL %q: %v", src, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fontloc.Errorf(fontloc.EDOWNLOAD, "could not download font %s: %v", src, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return fontloc.Errorf(fontloc.EDOWNLOAD, "could not download font %s: HTTP %d", src, resp.StatusCode)
	}

	rb := &responseBody{r: resp.Body}
	body := bufio.NewReader(rb)
	if _, err := body.Peek(1); errors.Is(err, io.EOF) {
		return fontloc.Errorf(fontloc.EDOWNLOAD, "downloaded font is empty %s", src)
	} else if err != nil {
		return fontloc.Errorf(fontloc.EDOWNLOAD, "could not download font %s: %v", src, err)
	}

	if _, err := fs.WriteFileAtomic(path, body); err != nil {
		if rb.err != nil {
			return fontloc.Errorf(fontloc.EDOWNLOAD, "could not download font %s: %v", src, rb.err)
		}
		return fmt.Errorf("save font %s: %w", src, err)
	}
	return nil
}

// responseBody records the first failure reading a font response so that a
// broken transfer can be told apart from a failure writing to disk.
type responseBody struct {
	r   io.Reader
	err error
}

func (b *responseBody) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF && b.err == nil {
		b.err = err
	}
	return n, err
}
