package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/fontloc"
)

// Ensure LoggingCache implements fontloc.StylesheetCache.
var _ fontloc.StylesheetCache = (*LoggingCache)(nil)

// LoggingCache wraps a StylesheetCache with debug logging of hits and misses.
type LoggingCache struct {
	next   fontloc.StylesheetCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next fontloc.StylesheetCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Read delegates to the wrapped cache and logs whether the entry was found.
func (c *LoggingCache) Read(ctx context.Context, address string) (css string, ok bool, err error) {
	defer func() {
		c.logger.Debug("cache read",
			"address", address,
			"key", fontloc.Fingerprint(address),
			"hit", ok,
			"err", err,
		)
	}()
	return c.next.Read(ctx, address)
}

// Write delegates to the wrapped cache and logs the entry size.
func (c *LoggingCache) Write(ctx context.Context, address, css string) (err error) {
	defer func() {
		c.logger.Debug("cache write",
			"address", address,
			"key", fontloc.Fingerprint(address),
			"bytes", len(css),
			"err", err,
		)
	}()
	return c.next.Write(ctx, address, css)
}
