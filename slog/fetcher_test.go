package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/fontloc"
	"github.com/fwojciec/fontloc/mock"
	locslog "github.com/fwojciec/fontloc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_FetchStylesheets(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StylesheetFetcher{
			FetchStylesheetsFn: func(ctx context.Context, urls []string) (string, error) {
				return "a{color:red}", nil
			},
		}

		fetcher := locslog.NewLoggingFetcher(inner, logger)
		css, err := fetcher.FetchStylesheets(context.Background(), []string{"https://fonts.example.com/css"})

		require.NoError(t, err)
		assert.Equal(t, "a{color:red}", css)
		output := buf.String()
		assert.Contains(t, output, "fetch stylesheets")
		assert.Contains(t, output, "https://fonts.example.com/css")
		assert.Contains(t, output, "bytes=12")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StylesheetFetcher{
			FetchStylesheetsFn: func(ctx context.Context, urls []string) (string, error) {
				return "", fontloc.Errorf(fontloc.EFETCH, "status 404")
			},
		}

		fetcher := locslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.FetchStylesheets(context.Background(), []string{"https://fonts.example.com/css"})

		require.Error(t, err)
		assert.Equal(t, fontloc.EFETCH, fontloc.ErrorCode(err))
		assert.Contains(t, buf.String(), "err=")
		assert.Contains(t, buf.String(), "status 404")
	})
}

func TestLoggingDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("logs face count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var got []fontloc.FontFace
		inner := &mock.AssetDownloader{
			DownloadFn: func(ctx context.Context, faces []fontloc.FontFace) error {
				got = faces
				return nil
			},
		}

		faces := []fontloc.FontFace{{Family: "Inter", Src: "https://x/a.woff2"}, {Family: "Inter", Src: "https://x/b.woff2"}}
		err := locslog.NewLoggingDownloader(inner, logger).Download(context.Background(), faces)

		require.NoError(t, err)
		assert.Equal(t, faces, got)
		assert.Contains(t, buf.String(), "download fonts")
		assert.Contains(t, buf.String(), "faces=2")
	})

	t.Run("passes error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.AssetDownloader{
			DownloadFn: func(ctx context.Context, faces []fontloc.FontFace) error {
				return errors.New("disk full")
			},
		}

		err := locslog.NewLoggingDownloader(inner, logger).Download(context.Background(), nil)

		require.EqualError(t, err, "disk full")
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingCache(t *testing.T) {
	t.Parallel()

	t.Run("logs hit at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.StylesheetCache{
			ReadFn: func(ctx context.Context, address string) (string, bool, error) {
				return "cached", true, nil
			},
		}

		css, ok, err := locslog.NewLoggingCache(inner, logger).Read(context.Background(), "https://x/css")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "cached", css)
		assert.Contains(t, buf.String(), "cache read")
		assert.Contains(t, buf.String(), "hit=true")
		assert.Contains(t, buf.String(), "key="+fontloc.Fingerprint("https://x/css"))
	})

	t.Run("silent at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StylesheetCache{
			WriteFn: func(ctx context.Context, address, css string) error {
				return nil
			},
		}

		err := locslog.NewLoggingCache(inner, logger).Write(context.Background(), "https://x/css", "body{}")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
