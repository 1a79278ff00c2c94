// Package slog provides logging decorators for fontloc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fontloc"
)

// Ensure LoggingFetcher implements fontloc.StylesheetFetcher.
var _ fontloc.StylesheetFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a StylesheetFetcher with logging.
type LoggingFetcher struct {
	next   fontloc.StylesheetFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next fontloc.StylesheetFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchStylesheets delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchStylesheets(ctx context.Context, urls []string) (css string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch stylesheets",
			"urls", urls,
			"bytes", len(css),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchStylesheets(ctx, urls)
}
