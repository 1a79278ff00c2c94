package http

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/fontloc"
	"golang.org/x/time/rate"
)

// HostLimiter spaces out font downloads that share an origin host. Each
// host gets its own token bucket with a burst of one, so a stylesheet whose
// faces live on a single CDN is fetched at a steady pace while faces on
// other hosts are not held back. A nil HostLimiter never waits.
type HostLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	limit rate.Limit
}

// NewHostLimiter creates a HostLimiter allowing rps downloads per second
// from any one host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		hosts: make(map[string]*rate.Limiter),
		limit: rate.Limit(rps),
	}
}

// Wait blocks until a download of the font at src may start. Host names
// compare case-insensitively and include the port. Returns EINVALID when
// src has no host, or the context error if ctx ends first.
func (l *HostLimiter) Wait(ctx context.Context, src string) error {
	if l == nil {
		return nil
	}
	host, err := fontHost(src)
	if err != nil {
		return err
	}
	return l.bucket(host).Wait(ctx)
}

// Hosts returns the number of distinct hosts seen so far.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hosts)
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.hosts[host]
	if !ok {
		b = rate.NewLimiter(l.limit, 1)
		l.hosts[host] = b
	}
	return b
}

func fontHost(src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return "", fontloc.Errorf(fontloc.EINVALID, "font URL has no host: %q", src)
	}
	return strings.ToLower(u.Host), nil
}
