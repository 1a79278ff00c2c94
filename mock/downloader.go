package mock

import (
	"context"

	"github.com/fwojciec/fontloc"
)

var _ fontloc.AssetDownloader = (*AssetDownloader)(nil)

// AssetDownloader is a mock implementation of fontloc.AssetDownloader.
type AssetDownloader struct {
	DownloadFn func(ctx context.Context, faces []fontloc.FontFace) error
}

func (d *AssetDownloader) Download(ctx context.Context, faces []fontloc.FontFace) error {
	return d.DownloadFn(ctx, faces)
}
