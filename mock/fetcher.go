package mock

import (
	"context"

	"github.com/fwojciec/fontloc"
)

var _ fontloc.StylesheetFetcher = (*StylesheetFetcher)(nil)

// StylesheetFetcher is a mock implementation of fontloc.StylesheetFetcher.
type StylesheetFetcher struct {
	FetchStylesheetsFn func(ctx context.Context, urls []string) (string, error)
}

func (f *StylesheetFetcher) FetchStylesheets(ctx context.Context, urls []string) (string, error) {
	return f.FetchStylesheetsFn(ctx, urls)
}
