package mock

import (
	"context"

	"github.com/fwojciec/fontloc"
)

var _ fontloc.StylesheetCache = (*StylesheetCache)(nil)

// StylesheetCache is a mock implementation of fontloc.StylesheetCache.
type StylesheetCache struct {
	ReadFn  func(ctx context.Context, address string) (string, bool, error)
	WriteFn func(ctx context.Context, address, css string) error
}

func (c *StylesheetCache) Read(ctx context.Context, address string) (string, bool, error) {
	return c.ReadFn(ctx, address)
}

func (c *StylesheetCache) Write(ctx context.Context, address, css string) error {
	return c.WriteFn(ctx, address, css)
}
