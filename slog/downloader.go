package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fontloc"
)

// Ensure LoggingDownloader implements fontloc.AssetDownloader.
var _ fontloc.AssetDownloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps an AssetDownloader with logging.
type LoggingDownloader struct {
	next   fontloc.AssetDownloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next fontloc.AssetDownloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, faces []fontloc.FontFace) (err error) {
	defer func(begin time.Time) {
		d.logger.Info("download fonts",
			"faces", len(faces),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, faces)
}
